package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/mmeshcher/workshop-system/internal/model"
)

// CommandKind identifies one of the fixed command shapes the dispatcher
// recognizes.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandSelectCustomers
	CommandSelectProducts
	CommandSelectOrders
	CommandInsertCustomer
	CommandInsertProduct
	CommandInsertOrder
	CommandUpdateCustomer
	CommandUpdateProduct
	CommandUpdateOrder
	CommandDeleteCustomer
	CommandDeleteProduct
	CommandDeleteOrder
)

// String returns the command name for diagnostics.
func (k CommandKind) String() string {
	switch k {
	case CommandSelectCustomers:
		return "select customers"
	case CommandSelectProducts:
		return "select products"
	case CommandSelectOrders:
		return "select orders"
	case CommandInsertCustomer:
		return "insert customer"
	case CommandInsertProduct:
		return "insert product"
	case CommandInsertOrder:
		return "insert order"
	case CommandUpdateCustomer:
		return "update customer"
	case CommandUpdateProduct:
		return "update product"
	case CommandUpdateOrder:
		return "update order"
	case CommandDeleteCustomer:
		return "delete customer"
	case CommandDeleteProduct:
		return "delete product"
	case CommandDeleteOrder:
		return "delete order"
	default:
		return "unknown"
	}
}

// Command is the generic operation description accepted by Execute. Only the
// fields relevant to the kind are consulted: inserts carry a full record,
// updates carry an id and a patch, deletes carry an id.
type Command struct {
	Kind CommandKind

	ID string

	Customer *model.Customer
	Product  *model.Product
	Order    *model.Order

	CustomerPatch *CustomerPatch
	ProductPatch  *ProductPatch
	OrderPatch    *OrderPatch
}

// Execute dispatches a command to the matching collection operation. Selects
// return the typed record slice; all other kinds return nil. A command that
// matches no known shape yields an empty result and a diagnostic log, not an
// error.
func (db *DB) Execute(ctx context.Context, cmd Command) (any, error) {
	switch cmd.Kind {
	case CommandSelectCustomers:
		return db.SelectCustomers(ctx)
	case CommandSelectProducts:
		return db.SelectProducts(ctx)
	case CommandSelectOrders:
		return db.SelectOrders(ctx)
	case CommandInsertCustomer:
		if cmd.Customer == nil {
			return nil, nil
		}
		return nil, db.InsertCustomer(ctx, *cmd.Customer)
	case CommandInsertProduct:
		if cmd.Product == nil {
			return nil, nil
		}
		return nil, db.InsertProduct(ctx, *cmd.Product)
	case CommandInsertOrder:
		if cmd.Order == nil {
			return nil, nil
		}
		return nil, db.InsertOrder(ctx, *cmd.Order)
	case CommandUpdateCustomer:
		if cmd.CustomerPatch == nil {
			return nil, nil
		}
		return nil, db.UpdateCustomer(ctx, cmd.ID, *cmd.CustomerPatch)
	case CommandUpdateProduct:
		if cmd.ProductPatch == nil {
			return nil, nil
		}
		return nil, db.UpdateProduct(ctx, cmd.ID, *cmd.ProductPatch)
	case CommandUpdateOrder:
		if cmd.OrderPatch == nil {
			return nil, nil
		}
		return nil, db.UpdateOrder(ctx, cmd.ID, *cmd.OrderPatch)
	case CommandDeleteCustomer:
		return nil, db.DeleteCustomer(ctx, cmd.ID)
	case CommandDeleteProduct:
		return nil, db.DeleteProduct(ctx, cmd.ID)
	case CommandDeleteOrder:
		return nil, db.DeleteOrder(ctx, cmd.ID)
	default:
		db.logger.Warn("unrecognized command", zap.Int("kind", int(cmd.Kind)))
		return nil, nil
	}
}
