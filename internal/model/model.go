// Package model contains the domain entities of the workshop order service.
package model

// Role describes the access level of a user account.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// User represents an account that can sign in to the system.
// Permissions are resource:action strings, e.g. "order:update".
type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the permission string is in the user's set.
// Matching is exact and case-sensitive.
func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// Customer represents a client of the workshop.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Product represents an item from the workshop catalog.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	InStock       bool    `json:"inStock"`
	DateCreated   string  `json:"dateCreated"`
	Category      string  `json:"category,omitempty"`
	ImagePath     string  `json:"imagePath,omitempty"`
	FrontPhotoURL string  `json:"frontPhotoUrl,omitempty"`
	BackPhotoURL  string  `json:"backPhotoUrl,omitempty"`
}

// OrderStatus describes the processing state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusCompleted  OrderStatus = "Completed"
)

// Order represents a manufacturing order. ProductID may be empty for
// custom one-off orders; DateCompleted is set when the order is completed.
type Order struct {
	ID                   string      `json:"id"`
	CustomerID           string      `json:"customerId"`
	ProductID            string      `json:"productId,omitempty"`
	ProductName          string      `json:"productName"`
	Description          string      `json:"description"`
	Status               OrderStatus `json:"status"`
	DateCreated          string      `json:"dateCreated"`
	DateCompleted        string      `json:"dateCompleted,omitempty"`
	ImagePath            string      `json:"imagePath,omitempty"`
	ExpectedDeliveryDate string      `json:"expectedDeliveryDate,omitempty"`
	Notes                string      `json:"notes,omitempty"`
}
