// Package router wires the HTTP surface: the JSON catalog/order API, the
// server-rendered storefront pages and the shared middleware chain.
package router

import (
	"net/http"

	"cats-shop/internal/config"
	"cats-shop/internal/handler"
	"cats-shop/internal/middleware"
	"cats-shop/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New builds the router. Mutating catalog routes sit behind admin basic
// auth; reads and order composition are public.
func New(
	cfg *config.Config,
	products *handler.ProductHandler,
	orders *handler.OrderHandler,
	pages *web.Pages,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	adminOnly := middleware.AdminAuth(cfg.Admin.Login, cfg.Admin.PasswordHash, logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.GetAll)
			r.Get("/{id}", products.GetByID)

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/", products.Create)
				r.Put("/", products.Update)
				r.Delete("/", products.Delete)
			})
		})

		r.Post("/orders/intent", orders.CreateIntent)
	})

	r.Get("/", pages.RedirectRoot)
	r.Route("/{locale}", func(r chi.Router) {
		r.Get("/", pages.Home)
		r.Get("/product/{id}", pages.ProductPage)
		r.Post("/product/{id}/buy", pages.Buy)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/admin", pages.Admin)
			r.Post("/admin", pages.Admin)
		})
	})

	return r
}
