// Package service implements the business rules of the workshop order
// service on top of the persistence layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mmeshcher/workshop-system/internal/i18n"
	"github.com/mmeshcher/workshop-system/internal/model"
	"github.com/mmeshcher/workshop-system/internal/repository"
	"github.com/mmeshcher/workshop-system/internal/sms"
	"github.com/mmeshcher/workshop-system/internal/storage"
	"github.com/mmeshcher/workshop-system/internal/validation"
)

// ErrValidation wraps payload validation failures.
var (
	ErrValidation = errors.New("validation failed")
	// ErrCustomerNotFound is returned when an operation references an
	// unknown customer id.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerHasOrders is returned when deleting a customer that is
	// still referenced by orders.
	ErrCustomerHasOrders = errors.New("customer has existing orders")
	// ErrProductNotFound is returned when an operation references an
	// unknown product id.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductInUse is returned when deleting a product that is still
	// referenced by orders.
	ErrProductInUse = errors.New("product is used in existing orders")
	// ErrOrderNotFound is returned when an operation references an unknown
	// order id.
	ErrOrderNotFound = errors.New("order not found")
	// ErrUnsupportedLanguage is returned for language codes other than
	// en and ar.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Repository describes the persistence contract used by the service.
type Repository interface {
	SelectCustomers(ctx context.Context) ([]model.Customer, error)
	SelectProducts(ctx context.Context) ([]model.Product, error)
	SelectOrders(ctx context.Context) ([]model.Order, error)
	InsertCustomer(ctx context.Context, customer model.Customer) error
	InsertProduct(ctx context.Context, product model.Product) error
	InsertOrder(ctx context.Context, order model.Order) error
	UpdateCustomer(ctx context.Context, id string, patch repository.CustomerPatch) error
	UpdateProduct(ctx context.Context, id string, patch repository.ProductPatch) error
	UpdateOrder(ctx context.Context, id string, patch repository.OrderPatch) error
	DeleteCustomer(ctx context.Context, id string) error
	DeleteProduct(ctx context.Context, id string) error
	DeleteOrder(ctx context.Context, id string) error
	TestConnection(ctx context.Context) bool
	InitializeDatabase(ctx context.Context) error
	SeedDatabaseIfEmpty(ctx context.Context) error
}

// Service contains the business logic of the workshop order service.
type Service struct {
	repo        Repository
	smsProvider sms.Provider
	store       storage.Store
	logger      *zap.Logger
	defaultLang string
}

// NewService creates a service over the given repository, SMS provider and
// storage backend (used for the language preference record).
func NewService(repo Repository, smsProvider sms.Provider, store storage.Store, logger *zap.Logger, defaultLang string) *Service {
	if !i18n.IsSupported(defaultLang) {
		defaultLang = i18n.LangEN
	}
	return &Service{
		repo:        repo,
		smsProvider: smsProvider,
		store:       store,
		logger:      logger,
		defaultLang: defaultLang,
	}
}

func isoNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// CustomerInput is the payload for creating a customer.
type CustomerInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address"`
}

// ProductInput is the payload for creating a product.
type ProductInput struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	InStock       bool    `json:"inStock"`
	Category      string  `json:"category"`
	ImagePath     string  `json:"imagePath"`
	FrontPhotoURL string  `json:"frontPhotoUrl"`
	BackPhotoURL  string  `json:"backPhotoUrl"`
}

// OrderInput is the payload for creating an order.
type OrderInput struct {
	CustomerID           string            `json:"customerId" validate:"required"`
	ProductID            string            `json:"productId"`
	ProductName          string            `json:"productName" validate:"required"`
	Description          string            `json:"description"`
	Status               model.OrderStatus `json:"status"`
	ImagePath            string            `json:"imagePath"`
	ExpectedDeliveryDate string            `json:"expectedDeliveryDate"`
	Notes                string            `json:"notes"`
}

// Customers returns all customers.
func (s *Service) Customers(ctx context.Context) ([]model.Customer, error) {
	return s.repo.SelectCustomers(ctx)
}

// Products returns all products.
func (s *Service) Products(ctx context.Context) ([]model.Product, error) {
	return s.repo.SelectProducts(ctx)
}

// Orders returns all orders.
func (s *Service) Orders(ctx context.Context) ([]model.Order, error) {
	return s.repo.SelectOrders(ctx)
}

// GetCustomerByID returns the customer with the given id.
func (s *Service) GetCustomerByID(ctx context.Context, id string) (*model.Customer, error) {
	customers, err := s.repo.SelectCustomers(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrCustomerNotFound
}

// AddCustomer validates the payload, assigns an id and stores the customer.
func (s *Service) AddCustomer(ctx context.Context, input CustomerInput) (*model.Customer, error) {
	if err := validation.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	customer := model.Customer{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := s.repo.InsertCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer applies a partial update to the customer.
func (s *Service) UpdateCustomer(ctx context.Context, id string, patch repository.CustomerPatch) error {
	if err := s.repo.UpdateCustomer(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}

// DeleteCustomer removes the customer unless any order still references it.
func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	orders, err := s.repo.SelectOrders(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.CustomerID == id {
			return ErrCustomerHasOrders
		}
	}

	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}

// GetProductByID returns the product with the given id.
func (s *Service) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	products, err := s.repo.SelectProducts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// AddProduct validates the payload, assigns an id and creation date and
// stores the product.
func (s *Service) AddProduct(ctx context.Context, input ProductInput) (*model.Product, error) {
	if err := validation.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	product := model.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		InStock:       input.InStock,
		DateCreated:   isoNow(),
		Category:      input.Category,
		ImagePath:     input.ImagePath,
		FrontPhotoURL: input.FrontPhotoURL,
		BackPhotoURL:  input.BackPhotoURL,
	}
	if err := s.repo.InsertProduct(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct applies a partial update to the product.
func (s *Service) UpdateProduct(ctx context.Context, id string, patch repository.ProductPatch) error {
	if err := s.repo.UpdateProduct(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

// DeleteProduct removes the product unless any order still references it.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	orders, err := s.repo.SelectOrders(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.ProductID == id {
			return ErrProductInUse
		}
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

// GetOrderByID returns the order with the given id.
func (s *Service) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := s.repo.SelectOrders(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// AddOrder validates the payload, checks the customer reference and stores
// the order. New orders start as Pending unless a status is supplied.
func (s *Service) AddOrder(ctx context.Context, input OrderInput) (*model.Order, error) {
	if err := validation.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := s.GetCustomerByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	order := model.Order{
		ID:                   uuid.NewString(),
		CustomerID:           input.CustomerID,
		ProductID:            input.ProductID,
		ProductName:          input.ProductName,
		Description:          input.Description,
		Status:               status,
		DateCreated:          isoNow(),
		ImagePath:            input.ImagePath,
		ExpectedDeliveryDate: input.ExpectedDeliveryDate,
		Notes:                input.Notes,
	}
	if err := s.repo.InsertOrder(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder applies a partial update to the order.
func (s *Service) UpdateOrder(ctx context.Context, id string, patch repository.OrderPatch) error {
	if err := s.repo.UpdateOrder(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

// DeleteOrder removes the order.
func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

// CompleteOrder transitions the order to Completed, stamps the completion
// date and notifies the customer by SMS. Completing an already-Completed
// order is a no-op: the completion date is set exactly once and no second
// notification goes out. The returned flag reports whether the SMS was sent.
func (s *Service) CompleteOrder(ctx context.Context, id string) (*model.Order, bool, error) {
	order, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if order.Status == model.OrderStatusCompleted {
		return order, false, nil
	}

	status := model.OrderStatusCompleted
	dateCompleted := isoNow()
	patch := repository.OrderPatch{
		Status:        &status,
		DateCompleted: &dateCompleted,
	}
	if err := s.repo.UpdateOrder(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrOrderNotFound
		}
		return nil, false, err
	}

	order.Status = status
	order.DateCompleted = dateCompleted

	notified := s.notifyCompletion(ctx, order)
	return order, notified, nil
}

// notifyCompletion sends the pickup SMS to the order's customer. Failures
// are logged and reported to the caller but never fail the completion.
func (s *Service) notifyCompletion(ctx context.Context, order *model.Order) bool {
	customer, err := s.GetCustomerByID(ctx, order.CustomerID)
	if err != nil {
		s.logger.Warn("completion notice skipped, customer missing",
			zap.String("orderID", order.ID),
			zap.String("customerID", order.CustomerID),
		)
		return false
	}

	body := fmt.Sprintf("Your order %s (ID: %s) is now complete and ready for pickup.",
		order.ProductName, order.ID)

	result, err := s.smsProvider.Send(ctx, sms.Message{To: customer.Phone, Body: body})
	if err != nil {
		s.logger.Error("failed to send completion sms",
			zap.String("orderID", order.ID),
			zap.Error(err),
		)
		return false
	}

	s.logger.Info("completion sms sent",
		zap.String("orderID", order.ID),
		zap.String("messageID", result.MessageID),
	)
	return true
}

// GetCustomerOrders returns the orders referencing the customer.
func (s *Service) GetCustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	orders, err := s.repo.SelectOrders(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Order, 0)
	for _, o := range orders {
		if o.CustomerID == customerID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// GetOrdersByStatus returns the orders currently in the given status.
func (s *Service) GetOrdersByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	orders, err := s.repo.SelectOrders(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Order, 0)
	for _, o := range orders {
		if o.Status == status {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// Language returns the persisted UI language preference, falling back to the
// configured default.
func (s *Service) Language(ctx context.Context) string {
	data, err := s.store.Get(ctx, storage.KeyLanguage)
	if err != nil {
		return s.defaultLang
	}
	lang := string(data)
	if !i18n.IsSupported(lang) {
		return s.defaultLang
	}
	return lang
}

// SetLanguage persists the UI language preference.
func (s *Service) SetLanguage(ctx context.Context, lang string) error {
	if !i18n.IsSupported(lang) {
		return ErrUnsupportedLanguage
	}
	if err := s.store.Set(ctx, storage.KeyLanguage, []byte(lang)); err != nil {
		s.logger.Error("error saving language preference", zap.Error(err))
	}
	return nil
}
