package favorites

import (
	"net/http"

	"merma/catalog"
	"merma/models"
	"merma/session"
	"merma/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the favorites set. All routes require the session
// middleware.
type Handler struct {
	Catalog *catalog.Store
}

// GetFavorites lists the favorited products, skipping ids that no longer
// resolve against the catalog.
func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	store, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	snap := store.Snapshot()
	products := make([]models.Product, 0, len(snap.Favorites))
	for _, id := range snap.Favorites {
		if p, found := h.Catalog.Product(id); found {
			products = append(products, p)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"favorites": products,
		"count":     len(snap.Favorites),
	})
}

// AddFavorite is idempotent: favoriting twice leaves a single entry.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseProductID(ps.ByName("productId"))
	if !ok {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}
	if _, found := h.Catalog.Product(id); !found {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	store, found := session.FromContext(r.Context())
	if !found {
		http.Error(w, "Missing session", http.StatusBadRequest)
		return
	}

	store.Dispatch(session.AddToFavorites{ProductID: id})
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"status": "favorited"})
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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

	store.Dispatch(session.RemoveFromFavorites{ProductID: id})
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
