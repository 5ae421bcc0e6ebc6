package queries

import (
	"context"
	"database/sql"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"gorm.io/gorm"
)

const (
	selectOrders = `
		SELECT
			id,
			customer_name,
			address,
			payment_type,
			delivery_type,
			status
		FROM orders`

	selectItems = `
		SELECT
			id,
			order_id,
			item_name,
			quantity,
			price
		FROM order_items`
)

// snapshotOptions make every statement of a read see the same committed state.
var snapshotOptions = &sql.TxOptions{
	Isolation: sql.LevelRepeatableRead,
	ReadOnly:  true,
}

func readSnapshot(ctx context.Context, db *gorm.DB, read func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(read, snapshotOptions)
}

type orderRow struct {
	id      int64
	details order.Details
}

type itemRow struct {
	id       int64
	orderID  int64
	name     string
	quantity int
	price    float64
}

func scanOrders(query *gorm.DB) ([]orderRow, error) {
	rows, err := query.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]orderRow, 0)
	for rows.Next() {
		var (
			row                                orderRow
			customerName, address, paymentType sql.NullString
			deliveryType, status               sql.NullString
		)

		if err = rows.Scan(
			&row.id,
			&customerName,
			&address,
			&paymentType,
			&deliveryType,
			&status,
		); err != nil {
			return nil, err
		}

		row.details = order.Details{
			CustomerName: customerName.String,
			Address:      address.String,
			PaymentType:  paymentType.String,
			DeliveryType: kernel.DeliveryType(deliveryType.String),
			Status:       status.String,
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func scanItems(query *gorm.DB) ([]itemRow, error) {
	rows, err := query.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]itemRow, 0)
	for rows.Next() {
		var (
			row      itemRow
			name     sql.NullString
			quantity sql.NullInt64
			price    sql.NullFloat64
		)

		if err = rows.Scan(&row.id, &row.orderID, &name, &quantity, &price); err != nil {
			return nil, err
		}

		// null quantity and price count as zero
		row.name = name.String
		row.quantity = int(quantity.Int64)
		row.price = price.Float64
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func restoreOrders(orderRows []orderRow, itemRows []itemRow) ([]*order.Order, error) {
	itemsByOrder := make(map[int64][]*order.Item, len(orderRows))
	for _, row := range itemRows {
		itemsByOrder[row.orderID] = append(itemsByOrder[row.orderID],
			order.RestoreItem(kernel.ID(row.id), row.name, row.quantity, row.price))
	}

	orders := make([]*order.Order, 0, len(orderRows))
	for _, row := range orderRows {
		o, err := order.RestoreOrder(kernel.ID(row.id), row.details, itemsByOrder[row.id])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
