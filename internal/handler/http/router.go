package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/furnworld/storefront/internal/domain"
	"github.com/furnworld/storefront/internal/service"
	"github.com/furnworld/storefront/pkg/health"
	"github.com/furnworld/storefront/pkg/middleware"
)

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	cartService *service.CartService,
	catalogService *service.CatalogService,
	authService *service.AuthService,
	adminService *service.AdminService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	pprofCIDRs []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, pprofCIDRs, logger)

	cartHandler := NewCartHandler(cartService, logger)
	catalogHandler := NewCatalogHandler(catalogService, logger)
	authHandler := NewAuthHandler(authService, logger)
	adminHandler := NewAdminHandler(adminService, logger)

	// Storefront catalog endpoints
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", catalogHandler.ListProducts)
		r.Get("/products/featured", catalogHandler.Featured)
		r.Get("/products/slug/{slug}", catalogHandler.GetProductBySlug)
		r.Get("/products/{productID}", catalogHandler.GetProduct)
		r.Get("/search", catalogHandler.Search)
		r.Get("/navigation", catalogHandler.Navigation)
		r.Get("/banners", catalogHandler.Banners)
		r.Get("/offers", catalogHandler.Offers)
	})

	// Cart endpoints, keyed by the fw_cart cookie
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(CartID)

		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)

		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{productID}", cartHandler.UpdateItemQuantity)
		r.Delete("/items/{productID}", cartHandler.RemoveItem)
	})

	// Auth endpoints
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/me", authHandler.Me)
	})

	// Admin endpoints, JWT-protected and restricted to the admin role
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(middleware.Auth(authService.ValidateToken))
		r.Use(middleware.RequireRole(domain.RoleAdmin))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", adminHandler.ListProducts)
			r.Post("/", adminHandler.CreateProduct)
			r.Get("/{productID}", adminHandler.GetProduct)
			r.Put("/{productID}", adminHandler.UpdateProduct)
			r.Delete("/{productID}", adminHandler.DeleteProduct)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", adminHandler.ListCategories)
			r.Post("/", adminHandler.CreateCategory)
			r.Delete("/{categoryID}", adminHandler.DeleteCategory)
		})

		r.Route("/banners", func(r chi.Router) {
			r.Get("/", adminHandler.ListBanners)
			r.Post("/", adminHandler.CreateBanner)
			r.Delete("/{bannerID}", adminHandler.DeleteBanner)
		})

		r.Route("/offers", func(r chi.Router) {
			r.Get("/", adminHandler.ListOffers)
			r.Post("/", adminHandler.CreateOffer)
			r.Delete("/{offerID}", adminHandler.DeleteOffer)
		})
	})

	return r
}
