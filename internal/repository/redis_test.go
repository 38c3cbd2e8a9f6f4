package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"

	"github.com/mmeshcher/workshop-system/internal/model"
	"github.com/mmeshcher/workshop-system/internal/storage"
)

func TestRepositoryOverRedis(t *testing.T) {
	srv := miniredis.RunT(t)
	ctx := context.Background()

	store, err := storage.NewRedisStore(srv.Addr(), "", 0)
	if err != nil {
		t.Fatalf("NewRedisStore: %v", err)
	}
	defer store.Close()

	db := NewDB(store, zap.NewNop())
	if err := db.InitializeDatabase(ctx); err != nil {
		t.Fatalf("InitializeDatabase: %v", err)
	}

	order := model.Order{
		ID:          "redis-1",
		CustomerID:  "1",
		ProductName: "Bench Vise",
		Status:      model.OrderStatusPending,
		DateCreated: isoNow(),
	}
	if err := db.InsertOrder(ctx, order); err != nil {
		t.Fatalf("InsertOrder: %v", err)
	}

	// A second client over the same server sees the write.
	store2, err := storage.NewRedisStore(srv.Addr(), "", 0)
	if err != nil {
		t.Fatalf("second NewRedisStore: %v", err)
	}
	defer store2.Close()

	orders, err := NewDB(store2, zap.NewNop()).SelectOrders(ctx)
	if err != nil {
		t.Fatalf("SelectOrders: %v", err)
	}

	found := false
	for _, o := range orders {
		if o.ID == order.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("order written through one client not visible through another")
	}

	if !db.TestConnection(ctx) {
		t.Fatalf("TestConnection = false against live redis")
	}
}
