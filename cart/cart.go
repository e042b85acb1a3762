package cart

import (
	"encoding/json"
	"net/http"

	"merma/catalog"
	"merma/models"
	"merma/pricing"
	"merma/session"
	"merma/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the cart over the session state container. All routes
// require the session middleware.
type Handler struct {
	Catalog *catalog.Store
}

type lineItem struct {
	Product   models.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	LineTotal float64        `json:"lineTotal"`
}

// GetCart returns the cart joined against the catalog, plus the derived
// pricing quote. Line items whose product no longer resolves are filtered
// from the view but stay in state.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	snap := store.Snapshot()
	items := make([]lineItem, 0, len(snap.Cart))
	for _, ci := range snap.Cart {
		p, found := h.Catalog.Product(ci.ProductID)
		if !found {
			continue
		}
		items = append(items, lineItem{
			Product:   p,
			Quantity:  ci.Quantity,
			LineTotal: p.Price * float64(ci.Quantity),
		})
	}

	quote := pricing.Compute(store.Subtotal(h.Catalog))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items":     items,
		"itemCount": store.ItemCount(),
		"quote":     quote,
	})
}

// AddToCart increments quantity if the product is already carted, or
// appends a new line item.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		ProductID int `json:"id"`
		Quantity  int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}
	if payload.Quantity < 0 {
		http.Error(w, "Quantity must be positive", http.StatusBadRequest)
		return
	}
	if _, found := h.Catalog.Product(payload.ProductID); !found {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	store, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	store.Dispatch(session.AddToCart{ProductID: payload.ProductID, Quantity: payload.Quantity})
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"status":    "added",
		"itemCount": store.ItemCount(),
	})
}

// UpdateQuantity sets a line item's quantity outright. A quantity of zero
// or less is redirected to removal rather than dispatched.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseProductID(ps.ByName("productId"))
	if !ok {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	store, found := session.FromContext(r.Context())
	if !found {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	if payload.Quantity <= 0 {
		store.Dispatch(session.RemoveFromCart{ProductID: id})
	} else {
		store.Dispatch(session.UpdateCartQuantity{ProductID: id, Quantity: payload.Quantity})
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"status":    "updated",
		"itemCount": store.ItemCount(),
	})
}

// RemoveFromCart drops a line item; removing an absent id is a no-op.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseProductID(ps.ByName("productId"))
	if !ok {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	store, found := session.FromContext(r.Context())
	if !found {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	store.Dispatch(session.RemoveFromCart{ProductID: id})
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	store.Dispatch(session.ClearCart{})
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
