package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mmeshcher/workshop-system/internal/repository"
	"github.com/mmeshcher/workshop-system/internal/service"
)

// GetCustomers returns the customers collection.
func (h *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.Customers(r.Context())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, customers)
}

// GetCustomer returns a single customer.
func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.GetCustomerByID(r.Context(), pathID(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, customer)
}

// CreateCustomer stores a new customer.
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var input service.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	customer, err := h.service.AddCustomer(r.Context(), input)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, customer)
}

type customerUpdateRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// UpdateCustomer applies a partial update; absent fields stay unchanged.
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	patch := repository.CustomerPatch{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := h.service.UpdateCustomer(r.Context(), pathID(r), patch); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.notice(w, r, http.StatusOK, "CustomerUpdated")
}

// DeleteCustomer removes a customer without orders.
func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCustomer(r.Context(), pathID(r)); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.notice(w, r, http.StatusOK, "CustomerDeleted")
}

// GetCustomerOrders returns the orders referencing a customer.
func (h *Handler) GetCustomerOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetCustomerOrders(r.Context(), pathID(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, orders)
}
