package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mmeshcher/workshop-system/internal/repository"
	"github.com/mmeshcher/workshop-system/internal/service"
)

// GetProducts returns the products collection.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Products(r.Context())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, products)
}

// GetProduct returns a single product.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProductByID(r.Context(), pathID(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, product)
}

// CreateProduct stores a new product.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input service.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	product, err := h.service.AddProduct(r.Context(), input)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, product)
}

type productUpdateRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	InStock       *bool    `json:"inStock"`
	Category      *string  `json:"category"`
	ImagePath     *string  `json:"imagePath"`
	FrontPhotoURL *string  `json:"frontPhotoUrl"`
	BackPhotoURL  *string  `json:"backPhotoUrl"`
}

// UpdateProduct applies a partial update; absent fields stay unchanged.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	patch := repository.ProductPatch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		InStock:       req.InStock,
		Category:      req.Category,
		ImagePath:     req.ImagePath,
		FrontPhotoURL: req.FrontPhotoURL,
		BackPhotoURL:  req.BackPhotoURL,
	}
	if err := h.service.UpdateProduct(r.Context(), pathID(r), patch); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.notice(w, r, http.StatusOK, "ProductUpdated")
}

// DeleteProduct removes a product not referenced by orders.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), pathID(r)); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.notice(w, r, http.StatusOK, "ProductDeleted")
}
