package queries

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no order has the requested id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	id := query.OrderID().Int64()

	var (
		orderRows []orderRow
		itemRows  []itemRow
	)
	err := readSnapshot(ctx, h.db, func(tx *gorm.DB) error {
		var err error
		if orderRows, err = scanOrders(tx.Raw(selectOrders+` WHERE id = ?`, id)); err != nil {
			return err
		}
		if len(orderRows) == 0 {
			return errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		itemRows, err = scanItems(tx.Raw(selectItems+` WHERE order_id = ? ORDER BY id`, id))
		return err
	})
	if err != nil {
		return nil, err
	}

	orders, err := restoreOrders(orderRows, itemRows)
	if err != nil {
		return nil, err
	}

	return orders[0], nil
}
