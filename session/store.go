package session

import (
	"context"
	"sync"

	"merma/models"
)

// ProductFinder is the slice of the catalog the derived queries need.
type ProductFinder interface {
	Product(id int) (models.Product, bool)
}

// Store owns one session's state. All mutation goes through Dispatch, so
// there is exactly one logical writer per transition; the mutex only
// serializes concurrent HTTP requests hitting the same session.
type Store struct {
	mu       sync.Mutex
	state    State
	checking bool
}

func NewStore() *Store {
	return &Store{state: initialState()}
}

// Dispatch applies an action and returns the resulting state snapshot.
func (st *Store) Dispatch(action Action) State {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = Apply(st.state, action)
	return st.state
}

// Snapshot returns a copy of the current state. The cart and favorites
// slices are copied so callers cannot mutate the store through them.
func (st *Store) Snapshot() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := st.state
	cart := make([]models.CartItem, len(s.Cart))
	copy(cart, s.Cart)
	s.Cart = cart
	favs := make([]int, len(s.Favorites))
	copy(favs, s.Favorites)
	s.Favorites = favs
	if s.User != nil {
		user := *s.User
		s.User = &user
	}
	return s
}

// ItemCount is the sum of all cart quantities.
func (st *Store) ItemCount() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	total := 0
	for _, item := range st.state.Cart {
		total += item.Quantity
	}
	return total
}

// Subtotal computes the cart subtotal against the catalog. Line items whose
// product id does not resolve contribute 0.
func (st *Store) Subtotal(products ProductFinder) float64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	total := 0.0
	for _, item := range st.state.Cart {
		if p, ok := products.Product(item.ProductID); ok {
			total += p.Price * float64(item.Quantity)
		}
	}
	return total
}

func (st *Store) IsFavorite(productID int) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, id := range st.state.Favorites {
		if id == productID {
			return true
		}
	}
	return false
}

// BeginCheckout marks the session busy for the duration of the simulated
// payment call. It reports false if a checkout is already in flight, which
// is the double-submit guard.
func (st *Store) BeginCheckout() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.checking {
		return false
	}
	st.checking = true
	return true
}

func (st *Store) EndCheckout() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.checking = false
}

type ctxKey struct{}

// NewContext attaches a session store to a request context.
func NewContext(ctx context.Context, st *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, st)
}

// FromContext retrieves the session store placed by the session middleware.
func FromContext(ctx context.Context) (*Store, bool) {
	st, ok := ctx.Value(ctxKey{}).(*Store)
	return st, ok
}
