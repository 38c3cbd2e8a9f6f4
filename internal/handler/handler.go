// Package handler contains the HTTP handlers exposing the service API
// consumed by the UI.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/workshop-system/internal/i18n"
	"github.com/mmeshcher/workshop-system/internal/middleware"
	"github.com/mmeshcher/workshop-system/internal/model"
	"github.com/mmeshcher/workshop-system/internal/repository"
	"github.com/mmeshcher/workshop-system/internal/service"
)

// Service defines the business-logic contract used by the HTTP handlers.
type Service interface {
	Customers(ctx context.Context) ([]model.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*model.Customer, error)
	AddCustomer(ctx context.Context, input service.CustomerInput) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch repository.CustomerPatch) error
	DeleteCustomer(ctx context.Context, id string) error

	Products(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	AddProduct(ctx context.Context, input service.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, patch repository.ProductPatch) error
	DeleteProduct(ctx context.Context, id string) error

	Orders(ctx context.Context) ([]model.Order, error)
	GetOrderByID(ctx context.Context, id string) (*model.Order, error)
	AddOrder(ctx context.Context, input service.OrderInput) (*model.Order, error)
	UpdateOrder(ctx context.Context, id string, patch repository.OrderPatch) error
	DeleteOrder(ctx context.Context, id string) error
	CompleteOrder(ctx context.Context, id string) (*model.Order, bool, error)
	GetCustomerOrders(ctx context.Context, customerID string) ([]model.Order, error)
	GetOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error)

	Summarize(ctx context.Context) (*service.Summary, error)
	BuildReport(ctx context.Context, filter service.ReportFilter) (*service.Report, error)
	Status(ctx context.Context) *service.DatabaseStatus

	Language(ctx context.Context) string
	SetLanguage(ctx context.Context, lang string) error
}

// AuthStore defines the permission-store contract used by the handlers.
type AuthStore interface {
	Login(ctx context.Context, username, password string) bool
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) *model.User
	CreateUser(ctx context.Context, username string, role model.Role, permissions []string, password string) (*model.User, error)
	UpdateUserPermissions(ctx context.Context, userID string, permissions []string) error
	Users(ctx context.Context) []model.User
}

// Handler implements the HTTP API of the workshop service.
type Handler struct {
	service        Service
	auth           AuthStore
	translator     *i18n.Translator
	logger         *zap.Logger
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler creates the HTTP handler set.
func NewHandler(s Service, auth AuthStore, translator *i18n.Translator, logger *zap.Logger, am *middleware.AuthMiddleware) *Handler {
	return &Handler{
		service:        s,
		auth:           auth,
		translator:     translator,
		logger:         logger,
		authMiddleware: am,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

type noticeResponse struct {
	Message string `json:"message"`
}

// notice writes a localized user-visible message using the stored language
// preference.
func (h *Handler) notice(w http.ResponseWriter, r *http.Request, status int, messageID string) {
	lang := h.service.Language(r.Context())
	h.writeJSON(w, status, noticeResponse{Message: h.translator.T(lang, messageID)})
}

// serviceError maps a service error to an HTTP status and notice message.
func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.notice(w, r, http.StatusBadRequest, "InvalidPayload")
	case errors.Is(err, service.ErrCustomerNotFound):
		h.notice(w, r, http.StatusNotFound, "CustomerNotFound")
	case errors.Is(err, service.ErrCustomerHasOrders):
		h.notice(w, r, http.StatusConflict, "CustomerHasOrders")
	case errors.Is(err, service.ErrProductNotFound):
		h.notice(w, r, http.StatusNotFound, "ProductNotFound")
	case errors.Is(err, service.ErrProductInUse):
		h.notice(w, r, http.StatusConflict, "ProductInUse")
	case errors.Is(err, service.ErrOrderNotFound):
		h.notice(w, r, http.StatusNotFound, "OrderNotFound")
	case errors.Is(err, service.ErrUnsupportedLanguage):
		h.notice(w, r, http.StatusBadRequest, "UnsupportedLanguage")
	default:
		h.logger.Error("internal error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates the user and establishes the session identity.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if !h.auth.Login(r.Context(), req.Username, req.Password) {
		h.notice(w, r, http.StatusUnauthorized, "InvalidCredentials")
		return
	}

	h.notice(w, r, http.StatusOK, "LoginSuccessful")
}

// Logout clears the session identity.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Context())
	h.notice(w, r, http.StatusOK, "LoggedOut")
}

// Me returns the session user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.auth.CurrentUser(r.Context())
	if user == nil {
		h.notice(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// GetUsers returns all registered accounts.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.auth.Users(r.Context()))
}

type createUserRequest struct {
	Username    string     `json:"username"`
	Role        model.Role `json:"role"`
	Permissions []string   `json:"permissions"`
	Password    string     `json:"password"`
}

// CreateUser registers a new account.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	user, err := h.auth.CreateUser(r.Context(), req.Username, req.Role, req.Permissions, req.Password)
	if err != nil {
		h.notice(w, r, http.StatusConflict, "UsernameExists")
		return
	}

	h.writeJSON(w, http.StatusCreated, user)
}

type updatePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

// UpdateUserPermissions replaces a user's permission set.
func (h *Handler) UpdateUserPermissions(w http.ResponseWriter, r *http.Request) {
	var req updatePermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.auth.UpdateUserPermissions(r.Context(), pathID(r), req.Permissions); err != nil {
		h.notice(w, r, http.StatusNotFound, "UserNotFound")
		return
	}

	h.notice(w, r, http.StatusOK, "PermissionsUpdated")
}
