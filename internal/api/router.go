package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/checkout/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Group(func(r chi.Router) {
			r.Use(mw.BearerAuth)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.Cart)
				r.Post("/items", h.AddCartItem)
				r.Delete("/items/{id}", h.RemoveCartItem)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", h.Checkout)
				r.Get("/{orderID}", h.Snapshot)
				r.Delete("/{orderID}", h.CancelRun)
				r.Post("/{orderID}/surface/closed", h.SurfaceClosed)
			})

			r.Route("/orders/{orderID}", func(r chi.Router) {
				r.Post("/payment", h.RetryPayment)
				r.Get("/flash", h.Flash)
			})
		})
	})

	return mux
}
