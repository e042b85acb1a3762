package products

import (
	"net/http"

	"merma/catalog"
	"merma/filters"
	"merma/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the catalog read surface: listing, detail, categories and
// per-product reviews.
type Handler struct {
	Catalog *catalog.Store
}

// ListProducts applies the listing filters from the query string
// (search, category, sort, minPrice, maxPrice) and returns the ordered view.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := utils.ParseListingQuery(r)
	view := filters.Apply(h.Catalog.Products(), query)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"products": view,
		"total":    len(view),
	})
}

// GetProduct returns one product or an explicit not-found state.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseProductID(ps.ByName("productId"))
	if !ok {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	p, found := h.Catalog.Product(id)
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// GetHome returns the home page payload: featured products plus the
// category rail.
func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"featured":   h.Catalog.Featured(),
		"categories": h.Catalog.Categories(),
	})
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"categories": h.Catalog.Categories(),
	})
}

// GetProductReviews returns the reviews for one product; a product with no
// reviews yields an empty list, and an unknown product a not-found state.
func (h *Handler) GetProductReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := utils.ParseProductID(ps.ByName("productId"))
	if !ok {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}
	if _, found := h.Catalog.Product(id); !found {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"reviews": h.Catalog.ReviewsFor(id),
	})
}
