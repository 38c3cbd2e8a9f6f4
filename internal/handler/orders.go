package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mmeshcher/workshop-system/internal/model"
	"github.com/mmeshcher/workshop-system/internal/repository"
	"github.com/mmeshcher/workshop-system/internal/service"
)

// GetOrders returns the orders collection, optionally narrowed to a status
// via the ?status= query parameter.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	if status := r.URL.Query().Get("status"); status != "" {
		orders, err := h.service.GetOrdersByStatus(r.Context(), model.OrderStatus(status))
		if err != nil {
			h.serviceError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, orders)
		return
	}

	orders, err := h.service.Orders(r.Context())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, orders)
}

// GetOrder returns a single order.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.GetOrderByID(r.Context(), pathID(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, order)
}

// CreateOrder stores a new order.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input service.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, err := h.service.AddOrder(r.Context(), input)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, order)
}

type orderUpdateRequest struct {
	CustomerID           *string            `json:"customerId"`
	ProductID            *string            `json:"productId"`
	ProductName          *string            `json:"productName"`
	Description          *string            `json:"description"`
	Status               *model.OrderStatus `json:"status"`
	DateCompleted        *string            `json:"dateCompleted"`
	ImagePath            *string            `json:"imagePath"`
	ExpectedDeliveryDate *string            `json:"expectedDeliveryDate"`
	Notes                *string            `json:"notes"`
}

// UpdateOrder applies a partial update; absent fields stay unchanged.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	patch := repository.OrderPatch{
		CustomerID:           req.CustomerID,
		ProductID:            req.ProductID,
		ProductName:          req.ProductName,
		Description:          req.Description,
		Status:               req.Status,
		DateCompleted:        req.DateCompleted,
		ImagePath:            req.ImagePath,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		Notes:                req.Notes,
	}
	if err := h.service.UpdateOrder(r.Context(), pathID(r), patch); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.notice(w, r, http.StatusOK, "OrderUpdated")
}

// DeleteOrder removes an order.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteOrder(r.Context(), pathID(r)); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.notice(w, r, http.StatusOK, "OrderDeleted")
}

type completeOrderResponse struct {
	Order   *model.Order `json:"order"`
	Message string       `json:"message"`
	SmsSent bool         `json:"smsSent"`
}

// CompleteOrder marks the order Completed and reports whether the customer
// was notified by SMS.
func (h *Handler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	order, notified, err := h.service.CompleteOrder(r.Context(), pathID(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	lang := h.service.Language(r.Context())
	h.writeJSON(w, http.StatusOK, completeOrderResponse{
		Order:   order,
		Message: h.translator.T(lang, "OrderCompleted"),
		SmsSent: notified,
	})
}
