// Package repository implements the mock persistence layer: three record
// collections stored as whole JSON arrays in a durable key-value backend,
// presented to callers through a relational-style CRUD contract.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/mmeshcher/workshop-system/internal/model"
	"github.com/mmeshcher/workshop-system/internal/storage"
)

// ErrNotFound is returned when an update or delete references a record id
// that is not present in the collection.
var ErrNotFound = errors.New("record not found")

const probeKey = "test_connection"

// DB provides collection CRUD over a storage.Store. Each operation is a
// single load-modify-save sequence against the backend; the backend is the
// sole source of truth and nothing is cached between calls.
type DB struct {
	store  storage.Store
	logger *zap.Logger
}

// NewDB creates a mock database over the given storage backend.
func NewDB(store storage.Store, logger *zap.Logger) *DB {
	return &DB{
		store:  store,
		logger: logger,
	}
}

// loadCollection reads a collection key into dst. A missing key or a payload
// that fails to parse falls back to the seed collection held in fallback.
func loadCollection[T any](ctx context.Context, db *DB, key string, fallback func() []T) []T {
	data, err := db.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			db.logger.Error("error loading collection", zap.String("key", key), zap.Error(err))
		}
		return fallback()
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		db.logger.Error("error parsing collection", zap.String("key", key), zap.Error(err))
		return fallback()
	}

	return records
}

// persist writes a collection back to storage and returns the write error.
func (db *DB) persist(ctx context.Context, key string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return db.store.Set(ctx, key, data)
}

// save persists a collection, logging write failures instead of propagating
// them: the caller's in-memory view stays ahead of durable state until the
// next successful write.
func (db *DB) save(ctx context.Context, key string, records any) {
	if err := db.persist(ctx, key, records); err != nil {
		db.logger.Error("error saving collection", zap.String("key", key), zap.Error(err))
	}
}

// SelectCustomers returns the full customers collection.
func (db *DB) SelectCustomers(ctx context.Context) ([]model.Customer, error) {
	return loadCollection(ctx, db, storage.KeyCustomers, SeedCustomers), nil
}

// SelectProducts returns the full products collection.
func (db *DB) SelectProducts(ctx context.Context) ([]model.Product, error) {
	return loadCollection(ctx, db, storage.KeyProducts, SeedProducts), nil
}

// SelectOrders returns the full orders collection.
func (db *DB) SelectOrders(ctx context.Context) ([]model.Order, error) {
	return loadCollection(ctx, db, storage.KeyOrders, SeedOrders), nil
}

// InsertCustomer appends the customer to the collection. Id uniqueness is the
// caller's responsibility.
func (db *DB) InsertCustomer(ctx context.Context, customer model.Customer) error {
	customers := loadCollection(ctx, db, storage.KeyCustomers, SeedCustomers)
	customers = append(customers, customer)
	db.save(ctx, storage.KeyCustomers, customers)
	return nil
}

// InsertProduct appends the product to the collection.
func (db *DB) InsertProduct(ctx context.Context, product model.Product) error {
	products := loadCollection(ctx, db, storage.KeyProducts, SeedProducts)
	products = append(products, product)
	db.save(ctx, storage.KeyProducts, products)
	return nil
}

// InsertOrder appends the order to the collection.
func (db *DB) InsertOrder(ctx context.Context, order model.Order) error {
	orders := loadCollection(ctx, db, storage.KeyOrders, SeedOrders)
	orders = append(orders, order)
	db.save(ctx, storage.KeyOrders, orders)
	return nil
}

// UpdateCustomer merges the non-nil patch fields into the customer with the
// given id.
func (db *DB) UpdateCustomer(ctx context.Context, id string, patch CustomerPatch) error {
	customers := loadCollection(ctx, db, storage.KeyCustomers, SeedCustomers)

	found := false
	for i := range customers {
		if customers[i].ID != id {
			continue
		}
		patch.apply(&customers[i])
		found = true
		break
	}
	if !found {
		return ErrNotFound
	}

	db.save(ctx, storage.KeyCustomers, customers)
	return nil
}

// UpdateProduct merges the non-nil patch fields into the product with the
// given id.
func (db *DB) UpdateProduct(ctx context.Context, id string, patch ProductPatch) error {
	products := loadCollection(ctx, db, storage.KeyProducts, SeedProducts)

	found := false
	for i := range products {
		if products[i].ID != id {
			continue
		}
		patch.apply(&products[i])
		found = true
		break
	}
	if !found {
		return ErrNotFound
	}

	db.save(ctx, storage.KeyProducts, products)
	return nil
}

// UpdateOrder merges the non-nil patch fields into the order with the
// given id.
func (db *DB) UpdateOrder(ctx context.Context, id string, patch OrderPatch) error {
	orders := loadCollection(ctx, db, storage.KeyOrders, SeedOrders)

	found := false
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		patch.apply(&orders[i])
		found = true
		break
	}
	if !found {
		return ErrNotFound
	}

	db.save(ctx, storage.KeyOrders, orders)
	return nil
}

// DeleteCustomer removes the customer with the given id.
func (db *DB) DeleteCustomer(ctx context.Context, id string) error {
	customers := loadCollection(ctx, db, storage.KeyCustomers, SeedCustomers)

	remaining := customers[:0:0]
	for _, c := range customers {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(customers) {
		return ErrNotFound
	}

	db.save(ctx, storage.KeyCustomers, remaining)
	return nil
}

// DeleteProduct removes the product with the given id.
func (db *DB) DeleteProduct(ctx context.Context, id string) error {
	products := loadCollection(ctx, db, storage.KeyProducts, SeedProducts)

	remaining := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(products) {
		return ErrNotFound
	}

	db.save(ctx, storage.KeyProducts, remaining)
	return nil
}

// DeleteOrder removes the order with the given id.
func (db *DB) DeleteOrder(ctx context.Context, id string) error {
	orders := loadCollection(ctx, db, storage.KeyOrders, SeedOrders)

	remaining := orders[:0:0]
	for _, o := range orders {
		if o.ID != id {
			remaining = append(remaining, o)
		}
	}
	if len(remaining) == len(orders) {
		return ErrNotFound
	}

	db.save(ctx, storage.KeyOrders, remaining)
	return nil
}

// TestConnection verifies the storage backend is writable with a trivial
// write-then-delete probe.
func (db *DB) TestConnection(ctx context.Context) bool {
	if err := db.store.Set(ctx, probeKey, []byte("test")); err != nil {
		db.logger.Error("storage connection failed", zap.Error(err))
		return false
	}
	if err := db.store.Delete(ctx, probeKey); err != nil {
		db.logger.Error("storage connection failed", zap.Error(err))
		return false
	}
	return true
}

// InitializeDatabase ensures all three collections exist in storage, seeding
// any that are missing or unreadable. Calling it repeatedly does not
// duplicate seed records.
func (db *DB) InitializeDatabase(ctx context.Context) error {
	customers := loadCollection(ctx, db, storage.KeyCustomers, SeedCustomers)
	products := loadCollection(ctx, db, storage.KeyProducts, SeedProducts)
	orders := loadCollection(ctx, db, storage.KeyOrders, SeedOrders)

	if err := db.persist(ctx, storage.KeyCustomers, customers); err != nil {
		return err
	}
	if err := db.persist(ctx, storage.KeyProducts, products); err != nil {
		return err
	}
	if err := db.persist(ctx, storage.KeyOrders, orders); err != nil {
		return err
	}

	db.logger.Info("storage initialized")
	return nil
}

// SeedDatabaseIfEmpty is kept as a distinct setup step for symmetry with a
// real database bootstrap sequence; seeding already happens in
// InitializeDatabase.
func (db *DB) SeedDatabaseIfEmpty(_ context.Context) error {
	return nil
}
