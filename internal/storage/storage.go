// Package storage provides the durable key-value backends the service
// persists its state into. Each record is a JSON blob under a fixed key.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key holds no value.
var ErrKeyNotFound = errors.New("key not found")

// Storage keys used by the service. Collection keys hold JSON arrays,
// the rest hold single JSON documents or a bare string (language).
const (
	KeyCustomers = "manufacturing_app_customers"
	KeyProducts  = "manufacturing_app_products"
	KeyOrders    = "manufacturing_app_orders"
	KeyUsers     = "users"
	KeyPasswords = "userPasswords"
	KeySession   = "user"
	KeyLanguage  = "language"
)

// Store is the durable key-value contract shared by all backends.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
