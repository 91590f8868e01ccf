package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kuvot/artorders/internal/http/analytics"
	"github.com/kuvot/artorders/internal/http/catalog"
	"github.com/kuvot/artorders/internal/http/export"
	"github.com/kuvot/artorders/internal/http/order"
	"github.com/kuvot/artorders/internal/http/product"
	"github.com/kuvot/artorders/internal/http/shipping"
)

func New(
	allowedOrigins []string,
	pricesV1 *catalog.Handler,
	productsV1 *product.Handler,
	ordersV1 *order.Handler,
	analyticsV1 *analytics.Handler,
	exportV1 *export.Handler,
	shippingV1 *shipping.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/prices", func(r chi.Router) {
			pricesV1.Routes(r)
		})

		r.Route("/products", func(r chi.Router) {
			productsV1.Routes(r)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ordersV1.Routes(r)
		})

		r.Route("/analytics", func(r chi.Router) {
			analyticsV1.Routes(r)
		})

		r.Route("/export", exportV1.Routes)

		r.Route("/shipping", func(r chi.Router) {
			shippingV1.Routes(r)
		})
	})

	return router
}
