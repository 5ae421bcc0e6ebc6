package queries

import (
	"context"

	"ordermanagement/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads every order and its items straight from the database.
// Orders are rebuilt as aggregates so delivery cost and total come from the domain.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the order list.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns all orders sorted by id, an empty slice when there are none.
// Orders and items are read from the same snapshot.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		orderRows []orderRow
		itemRows  []itemRow
	)
	err := readSnapshot(ctx, h.db, func(tx *gorm.DB) error {
		var err error
		if orderRows, err = scanOrders(tx.Raw(selectOrders + ` ORDER BY id`)); err != nil {
			return err
		}
		itemRows, err = scanItems(tx.Raw(selectItems + ` ORDER BY order_id, id`))
		return err
	})
	if err != nil {
		return nil, err
	}

	return restoreOrders(orderRows, itemRows)
}
