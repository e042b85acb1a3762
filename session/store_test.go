package session

import (
	"testing"

	"merma/catalog"
	"merma/models"
)

func TestAddToCartMergesLineItems(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddToCart{ProductID: 1, Quantity: 2})
	st.Dispatch(AddToCart{ProductID: 1, Quantity: 3})

	snap := st.Snapshot()
	if len(snap.Cart) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(snap.Cart))
	}
	if snap.Cart[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", snap.Cart[0].Quantity)
	}
}

func TestRemoveThenReAddStartsFresh(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddToCart{ProductID: 7, Quantity: 4})
	st.Dispatch(RemoveFromCart{ProductID: 7})
	st.Dispatch(AddToCart{ProductID: 7, Quantity: 2})

	snap := st.Snapshot()
	if len(snap.Cart) != 1 || snap.Cart[0].Quantity != 2 {
		t.Fatalf("expected one fresh line item with quantity 2, got %+v", snap.Cart)
	}
}

func TestRemoveFromCartAbsentIsNoOp(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddToCart{ProductID: 1, Quantity: 1})
	st.Dispatch(RemoveFromCart{ProductID: 99})

	if got := st.ItemCount(); got != 1 {
		t.Fatalf("expected item count 1, got %d", got)
	}
}

func TestUpdateCartQuantityReplaces(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddToCart{ProductID: 3, Quantity: 1})
	st.Dispatch(UpdateCartQuantity{ProductID: 3, Quantity: 5})

	snap := st.Snapshot()
	if snap.Cart[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", snap.Cart[0].Quantity)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	st := NewStore()
	st.Dispatch(Login{User: models.User{ID: 1, Name: "Usuario de Prueba"}})
	st.Dispatch(AddToCart{ProductID: 2, Quantity: 3})
	st.Dispatch(AddToFavorites{ProductID: 4})

	st.Dispatch(Logout{})

	snap := st.Snapshot()
	if snap.User != nil || snap.IsAuthenticated {
		t.Fatal("expected user cleared after logout")
	}
	if len(snap.Cart) != 0 {
		t.Fatalf("expected empty cart after logout, got %d items", len(snap.Cart))
	}
	if len(snap.Favorites) != 0 {
		t.Fatalf("expected empty favorites after logout, got %d", len(snap.Favorites))
	}
}

func TestFavoritesNeverDuplicate(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddToFavorites{ProductID: 5})
	st.Dispatch(AddToFavorites{ProductID: 5})

	snap := st.Snapshot()
	count := 0
	for _, id := range snap.Favorites {
		if id == 5 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected product 5 favorited exactly once, got %d", count)
	}
	if !st.IsFavorite(5) {
		t.Fatal("expected IsFavorite(5) to be true")
	}
}

func TestUnknownActionIsNoOp(t *testing.T) {
	before := State{Cart: []models.CartItem{{ProductID: 1, Quantity: 2}}, Favorites: []int{3}}
	after := Apply(before, unknownAction{})

	if len(after.Cart) != 1 || after.Cart[0].Quantity != 2 || len(after.Favorites) != 1 {
		t.Fatalf("unknown action changed state: %+v", after)
	}
}

type unknownAction struct{}

func (unknownAction) isAction() {}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := State{Cart: []models.CartItem{{ProductID: 1, Quantity: 2}}, Favorites: []int{}}
	Apply(before, AddToCart{ProductID: 1, Quantity: 3})

	if before.Cart[0].Quantity != 2 {
		t.Fatalf("reducer mutated its input, quantity now %d", before.Cart[0].Quantity)
	}
}

func TestSubtotalSkipsUnknownProducts(t *testing.T) {
	cat := catalog.New()
	st := NewStore()
	st.Dispatch(AddToCart{ProductID: 1, Quantity: 2}) // 15.90 each
	st.Dispatch(AddToCart{ProductID: 999, Quantity: 4})

	got := st.Subtotal(cat)
	want := 31.80
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected subtotal %.2f, got %.2f", want, got)
	}
}

func TestItemCountSumsQuantities(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddToCart{ProductID: 1, Quantity: 2})
	st.Dispatch(AddToCart{ProductID: 2, Quantity: 3})

	if got := st.ItemCount(); got != 5 {
		t.Fatalf("expected item count 5, got %d", got)
	}
}

// Mirrors the full listing-to-checkout flow: add product 3, bump it to five
// units and verify the derived subtotal against the catalog price.
func TestCartScenarioEndToEnd(t *testing.T) {
	cat := catalog.New()
	st := NewStore()

	st.Dispatch(AddToCart{ProductID: 3, Quantity: 1})
	st.Dispatch(UpdateCartQuantity{ProductID: 3, Quantity: 5})

	p, ok := cat.Product(3)
	if !ok {
		t.Fatal("product 3 missing from catalog")
	}

	got := st.Subtotal(cat)
	want := p.Price * 5
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected subtotal %.2f, got %.2f", want, got)
	}
}

func TestCheckoutBusyGuard(t *testing.T) {
	st := NewStore()
	if !st.BeginCheckout() {
		t.Fatal("first BeginCheckout should succeed")
	}
	if st.BeginCheckout() {
		t.Fatal("second BeginCheckout should be rejected while busy")
	}
	st.EndCheckout()
	if !st.BeginCheckout() {
		t.Fatal("BeginCheckout should succeed again after EndCheckout")
	}
}

func TestManagerCreateAndGet(t *testing.T) {
	mgr := NewManager()
	defer mgr.Stop()

	a := mgr.Create()
	b := mgr.Create()
	if a == b {
		t.Fatal("expected unique session ids")
	}

	if _, ok := mgr.Get(a); !ok {
		t.Fatal("expected session to resolve")
	}
	if _, ok := mgr.Get("nope"); ok {
		t.Fatal("expected unknown session to miss")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	st := NewStore()
	st.Dispatch(AddToCart{ProductID: 1, Quantity: 1})

	snap := st.Snapshot()
	snap.Cart[0].Quantity = 100

	if got := st.ItemCount(); got != 1 {
		t.Fatalf("snapshot mutation leaked into store, item count %d", got)
	}
}
