package session

import "merma/models"

// State is the per-session record of the current user, cart and favorites.
type State struct {
	User            *models.User      `json:"user"`
	Cart            []models.CartItem `json:"cart"`
	Favorites       []int             `json:"favorites"`
	IsAuthenticated bool              `json:"isAuthenticated"`
}

func initialState() State {
	return State{
		Cart:      []models.CartItem{},
		Favorites: []int{},
	}
}

// Action is the closed set of state transitions. Each variant carries its
// own payload fields; anything outside this set falls through the reducer
// unchanged.
type Action interface {
	isAction()
}

type Login struct {
	User models.User
}

type Logout struct{}

type AddToCart struct {
	ProductID int
	Quantity  int
}

type RemoveFromCart struct {
	ProductID int
}

type UpdateCartQuantity struct {
	ProductID int
	Quantity  int
}

type ClearCart struct{}

type AddToFavorites struct {
	ProductID int
}

type RemoveFromFavorites struct {
	ProductID int
}

func (Login) isAction()               {}
func (Logout) isAction()              {}
func (AddToCart) isAction()           {}
func (RemoveFromCart) isAction()      {}
func (UpdateCartQuantity) isAction()  {}
func (ClearCart) isAction()           {}
func (AddToFavorites) isAction()      {}
func (RemoveFromFavorites) isAction() {}

// Apply is the reducer: a pure, total transition over well-formed input.
// It never mutates the incoming state; cart and favorites slices are
// rebuilt on every change.
func Apply(s State, action Action) State {
	switch a := action.(type) {
	case Login:
		user := a.User
		s.User = &user
		s.IsAuthenticated = true
		return s

	case Logout:
		// Logout always empties cart and favorites: no authenticated-only
		// state survives it.
		s.User = nil
		s.IsAuthenticated = false
		s.Cart = []models.CartItem{}
		s.Favorites = []int{}
		return s

	case AddToCart:
		cart := make([]models.CartItem, len(s.Cart))
		copy(cart, s.Cart)
		for i, item := range cart {
			if item.ProductID == a.ProductID {
				cart[i].Quantity += a.Quantity
				s.Cart = cart
				return s
			}
		}
		s.Cart = append(cart, models.CartItem{ProductID: a.ProductID, Quantity: a.Quantity})
		return s

	case RemoveFromCart:
		cart := []models.CartItem{}
		for _, item := range s.Cart {
			if item.ProductID != a.ProductID {
				cart = append(cart, item)
			}
		}
		s.Cart = cart
		return s

	case UpdateCartQuantity:
		// Replaces the quantity outright. Callers are expected to redirect
		// quantities <= 0 to RemoveFromCart before dispatching.
		cart := make([]models.CartItem, len(s.Cart))
		copy(cart, s.Cart)
		for i, item := range cart {
			if item.ProductID == a.ProductID {
				cart[i].Quantity = a.Quantity
			}
		}
		s.Cart = cart
		return s

	case ClearCart:
		s.Cart = []models.CartItem{}
		return s

	case AddToFavorites:
		for _, id := range s.Favorites {
			if id == a.ProductID {
				return s
			}
		}
		favs := make([]int, len(s.Favorites))
		copy(favs, s.Favorites)
		s.Favorites = append(favs, a.ProductID)
		return s

	case RemoveFromFavorites:
		favs := []int{}
		for _, id := range s.Favorites {
			if id != a.ProductID {
				favs = append(favs, id)
			}
		}
		s.Favorites = favs
		return s

	default:
		return s
	}
}
