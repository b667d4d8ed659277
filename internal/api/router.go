// Package api assembles the HTTP surface of the shop back office.
package api

import (
	"log/slog"
	"net/http"
	"trendx-service/internal/api/handlers"

	"github.com/go-chi/chi/v5"
)

type Services struct {
	Products  handlers.ProductService
	Customers handlers.CustomerService
	Orders    handlers.OrderService
	Dashboard handlers.DashboardService
}

func NewRouter(svc Services, logger *slog.Logger) http.Handler {
	products := handlers.NewProductHandler(svc.Products, logger)
	customers := handlers.NewCustomerHandler(svc.Customers, logger)
	orders := handlers.NewOrderHandler(svc.Orders, logger)
	dashboard := handlers.NewDashboardHandler(svc.Dashboard, logger)

	r := chi.NewRouter()
	r.Use(handlers.RequestID)
	r.Use(handlers.Logging(logger))
	r.Use(handlers.Recoverer(logger))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.GetAll)
			r.Post("/", products.Create)
			r.Delete("/{id}", products.Delete)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", customers.GetAll)
			r.Post("/", customers.Create)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orders.GetAll)
			r.Post("/", orders.Create)
			r.Put("/{id}", orders.UpdateStatus)
		})

		r.Get("/dashboard", dashboard.Get)
	})

	return r
}
