package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	custommiddleware "github.com/mmeshcher/workshop-system/internal/middleware"
	"github.com/mmeshcher/workshop-system/internal/model"
)

func pathID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// SetupRouter configures the HTTP routes and middleware of the service.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	perm := h.authMiddleware.RequirePermission

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)
		r.Post("/auth/logout", h.Logout)
		r.Get("/auth/me", h.Me)

		r.Get("/language", h.GetLanguage)
		r.Put("/language", h.SetLanguage)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware.RequireAuth)

			r.Get("/dashboard", h.GetDashboard)
			r.Get("/database/status", h.GetDatabaseStatus)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(perm(model.Permission(model.ResourceUser, model.ActionRead))).
				Get("/", h.GetUsers)
			r.With(perm(model.Permission(model.ResourceUser, model.ActionCreate))).
				Post("/", h.CreateUser)
			r.With(perm(model.Permission(model.ResourceUser, model.ActionUpdate))).
				Put("/{id}/permissions", h.UpdateUserPermissions)
		})

		r.Route("/customers", func(r chi.Router) {
			readCustomer := perm(model.Permission(model.ResourceCustomer, model.ActionRead))
			r.With(readCustomer).Get("/", h.GetCustomers)
			r.With(readCustomer).Get("/{id}", h.GetCustomer)
			r.With(readCustomer).Get("/{id}/orders", h.GetCustomerOrders)
			r.With(perm(model.Permission(model.ResourceCustomer, model.ActionCreate))).
				Post("/", h.CreateCustomer)
			r.With(perm(model.Permission(model.ResourceCustomer, model.ActionUpdate))).
				Put("/{id}", h.UpdateCustomer)
			r.With(perm(model.Permission(model.ResourceCustomer, model.ActionDelete))).
				Delete("/{id}", h.DeleteCustomer)
		})

		r.Route("/products", func(r chi.Router) {
			readProduct := perm(model.Permission(model.ResourceProduct, model.ActionRead))
			r.With(readProduct).Get("/", h.GetProducts)
			r.With(readProduct).Get("/{id}", h.GetProduct)
			r.With(perm(model.Permission(model.ResourceProduct, model.ActionCreate))).
				Post("/", h.CreateProduct)
			r.With(perm(model.Permission(model.ResourceProduct, model.ActionUpdate))).
				Put("/{id}", h.UpdateProduct)
			r.With(perm(model.Permission(model.ResourceProduct, model.ActionDelete))).
				Delete("/{id}", h.DeleteProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			readOrder := perm(model.Permission(model.ResourceOrder, model.ActionRead))
			updateOrder := perm(model.Permission(model.ResourceOrder, model.ActionUpdate))
			r.With(readOrder).Get("/", h.GetOrders)
			r.With(readOrder).Get("/{id}", h.GetOrder)
			r.With(perm(model.Permission(model.ResourceOrder, model.ActionCreate))).
				Post("/", h.CreateOrder)
			r.With(updateOrder).Put("/{id}", h.UpdateOrder)
			r.With(updateOrder).Post("/{id}/complete", h.CompleteOrder)
			r.With(perm(model.Permission(model.ResourceOrder, model.ActionDelete))).
				Delete("/{id}", h.DeleteOrder)
		})

		r.With(perm(model.Permission(model.ResourceReport, model.ActionRead))).
			Get("/reports", h.GetReport)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
