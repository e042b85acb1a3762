package routes

import (
	"net/http"

	"merma/auth"
	"merma/cart"
	"merma/checkout"
	"merma/favorites"
	"merma/middleware"
	"merma/products"
	"merma/profile"
	"merma/ratelim"
	"merma/session"
	"merma/utils"

	"github.com/julienschmidt/httprouter"
)

// AddSessionRoutes exposes session creation; every stateful route expects
// the returned id in the X-Session-ID header.
func AddSessionRoutes(router *httprouter.Router, mgr *session.Manager) {
	router.POST("/api/session", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"sessionId": mgr.Create()})
	})
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, mgr *session.Manager, h *auth.Handler) {
	router.POST("/api/auth/login", rl.Limit(middleware.WithSession(mgr, h.Login)))
	router.POST("/api/auth/register", rl.Limit(middleware.WithSession(mgr, h.Register)))
	router.POST("/api/auth/logout", middleware.WithSession(mgr, middleware.Authenticate(h.Logout)))
}

func AddProductRoutes(router *httprouter.Router, h *products.Handler) {
	router.GET("/api/home", h.GetHome)
	router.GET("/api/products", h.ListProducts)
	router.GET("/api/products/:productId", h.GetProduct)
	router.GET("/api/products/:productId/reviews", h.GetProductReviews)
	router.GET("/api/categories", h.GetCategories)
}

func AddCartRoutes(router *httprouter.Router, mgr *session.Manager, h *cart.Handler) {
	router.GET("/api/cart", middleware.WithSession(mgr, h.GetCart))
	router.POST("/api/cart/items", middleware.WithSession(mgr, h.AddToCart))
	router.PUT("/api/cart/items/:productId", middleware.WithSession(mgr, h.UpdateQuantity))
	router.DELETE("/api/cart/items/:productId", middleware.WithSession(mgr, h.RemoveFromCart))
	router.DELETE("/api/cart", middleware.WithSession(mgr, h.ClearCart))
}

func AddFavoritesRoutes(router *httprouter.Router, mgr *session.Manager, h *favorites.Handler) {
	router.GET("/api/favorites", middleware.WithSession(mgr, h.GetFavorites))
	router.POST("/api/favorites/:productId", middleware.WithSession(mgr, h.AddFavorite))
	router.DELETE("/api/favorites/:productId", middleware.WithSession(mgr, h.RemoveFavorite))
}

func AddCheckoutRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, mgr *session.Manager, h *checkout.Handler) {
	router.POST("/api/checkout", rl.Limit(middleware.WithSession(mgr, h.PlaceOrder)))
	router.GET("/api/orders/:orderId", h.GetOrder)
	router.GET("/api/orders/:orderId/receipt", h.DownloadReceipt)
}

func AddProfileRoutes(router *httprouter.Router, mgr *session.Manager, h *profile.Handler) {
	router.GET("/api/profile", middleware.WithSession(mgr, middleware.Authenticate(h.GetProfile)))
}
