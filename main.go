package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"merma/apiclient"
	"merma/auth"
	"merma/cart"
	"merma/catalog"
	"merma/checkout"
	"merma/favorites"
	"merma/products"
	"merma/profile"
	"merma/ratelim"
	"merma/routes"
	"merma/session"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// backendClient picks the outbound client: a real backend when API_BASE_URL
// is set, otherwise the simulated one with its fixed latency.
func backendClient() apiclient.Client {
	if base := os.Getenv("API_BASE_URL"); base != "" {
		return apiclient.NewHTTP(base)
	}
	latency := 1500 * time.Millisecond
	if ms := os.Getenv("SIMULATED_LATENCY_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n >= 0 {
			latency = time.Duration(n) * time.Millisecond
		}
	}
	return &apiclient.Simulated{Latency: latency}
}

func setupRouter(rateLimiter *ratelim.RateLimiter, mgr *session.Manager, cat *catalog.Store, api apiclient.Client) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	orders := checkout.NewRegistry()

	routes.AddSessionRoutes(router, mgr)
	routes.AddAuthRoutes(router, rateLimiter, mgr, auth.NewHandler(cat, api))
	routes.AddProductRoutes(router, &products.Handler{Catalog: cat})
	routes.AddCartRoutes(router, mgr, &cart.Handler{Catalog: cat})
	routes.AddFavoritesRoutes(router, mgr, &favorites.Handler{Catalog: cat})
	routes.AddCheckoutRoutes(router, rateLimiter, mgr, &checkout.Handler{Catalog: cat, Orders: orders, API: api})
	routes.AddProfileRoutes(router, mgr, &profile.Handler{})

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	rateLimiter := ratelim.NewRateLimiter()
	sessions := session.NewManager()
	cat := catalog.New()
	api := backendClient()

	router := setupRouter(rateLimiter, sessions, cat, api)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		log.Println("Stopping background sweepers...")
		sessions.Stop()
		rateLimiter.Stop()
	})

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
