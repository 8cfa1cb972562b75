package router

import (
	"net/http"

	"sweetbox/internal/handler"
	"sweetbox/internal/middleware"
	"sweetbox/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the storefront handlers the router dispatches to.
type Handlers struct {
	Pages    *handler.PageHandler
	Products *handler.ProductHandler
	Cart     *handler.CartHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, visitorCookie string, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware order: Recovery -> Logging -> CORS -> Visitor
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Health check endpoint (no visitor required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Handle("/static/*", view.Static())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Visitor(visitorCookie, logger))

		r.Get("/", h.Pages.Index)
		r.Get("/index.html", h.Pages.Index)
		r.Get("/product/{id}", h.Pages.Product)
		r.Get("/about", h.Pages.About)
		r.Get("/contacts", h.Pages.Contacts)

		r.Get("/fragments/products", h.Pages.ProductsFragment)
		r.Get("/fragments/cart", h.Pages.CartFragment)

		r.Post("/actions/{action}", h.Cart.Action)

		r.Route("/api", func(r chi.Router) {
			r.Get("/products", h.Products.GetAll)
			r.Get("/products/{id}", h.Products.GetByID)
			r.Get("/cart", h.Cart.Get)
		})

		r.NotFound(h.Pages.NotFound)
	})

	return r
}
