package repository

import (
	"context"
	"testing"

	"github.com/mmeshcher/workshop-system/internal/model"
)

func TestExecute_SelectCustomers(t *testing.T) {
	db, _ := newTestDB(t)

	result, err := db.Execute(context.Background(), Command{Kind: CommandSelectCustomers})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	customers, ok := result.([]model.Customer)
	if !ok {
		t.Fatalf("result type = %T, want []model.Customer", result)
	}
	if len(customers) != len(SeedCustomers()) {
		t.Fatalf("customers = %d, want %d", len(customers), len(SeedCustomers()))
	}
}

func TestExecute_InsertAndDelete(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()

	product := model.Product{ID: "p-cmd", Name: "Workbench", Price: 300, InStock: true}
	if _, err := db.Execute(ctx, Command{Kind: CommandInsertProduct, Product: &product}); err != nil {
		t.Fatalf("insert via command: %v", err)
	}

	products, _ := db.SelectProducts(ctx)
	found := false
	for _, p := range products {
		if p.ID == "p-cmd" {
			found = true
		}
	}
	if !found {
		t.Fatalf("product inserted via command not found")
	}

	if _, err := db.Execute(ctx, Command{Kind: CommandDeleteProduct, ID: "p-cmd"}); err != nil {
		t.Fatalf("delete via command: %v", err)
	}

	products, _ = db.SelectProducts(ctx)
	for _, p := range products {
		if p.ID == "p-cmd" {
			t.Fatalf("product still present after delete command")
		}
	}
}

func TestExecute_UpdateWithPatch(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()

	notes := "rush job"
	cmd := Command{
		Kind:       CommandUpdateOrder,
		ID:         "1",
		OrderPatch: &OrderPatch{Notes: &notes},
	}
	if _, err := db.Execute(ctx, cmd); err != nil {
		t.Fatalf("update via command: %v", err)
	}

	orders, _ := db.SelectOrders(ctx)
	for _, o := range orders {
		if o.ID == "1" && o.Notes != notes {
			t.Fatalf("notes = %q, want %q", o.Notes, notes)
		}
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	db, _ := newTestDB(t)

	result, err := db.Execute(context.Background(), Command{Kind: CommandUnknown})
	if err != nil {
		t.Fatalf("unknown command returned error: %v", err)
	}
	if result != nil {
		t.Fatalf("unknown command returned result: %v", result)
	}
}

func TestExecute_InsertWithoutRecordIsNoOp(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := context.Background()

	before, _ := db.SelectCustomers(ctx)

	if _, err := db.Execute(ctx, Command{Kind: CommandInsertCustomer}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	after, _ := db.SelectCustomers(ctx)
	if len(after) != len(before) {
		t.Fatalf("customer count changed: %d -> %d", len(before), len(after))
	}
}
