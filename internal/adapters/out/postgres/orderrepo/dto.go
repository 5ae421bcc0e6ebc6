// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order aggregate is stored in two tables: orders and order_items.
package orderrepo

import (
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are a has-many association removed by the database when the order goes.
type OrderDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	CustomerName string
	Address      string
	PaymentType  string
	DeliveryType string
	Status       string
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one row of order_items.
type ItemDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	OrderID  int64 `gorm:"index;not null"`
	ItemName string
	Quantity int
	Price    float64
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Unset ids map to zero so the database assigns them on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	dto := OrderDTO{
		ID:           aggregate.ID().Int64(),
		CustomerName: aggregate.CustomerName(),
		Address:      aggregate.Address(),
		PaymentType:  aggregate.PaymentType(),
		DeliveryType: aggregate.DeliveryType().String(),
		Status:       aggregate.Status(),
		Items:        make([]ItemDTO, 0, len(items)),
	}

	for _, item := range items {
		dto.Items = append(dto.Items, ItemDTO{
			ID:       item.ID().Int64(),
			OrderID:  aggregate.ID().Int64(),
			ItemName: item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return dto
}

// toDomain rebuilds the aggregate with its items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.RestoreItem(kernel.ID(item.ID), item.ItemName, item.Quantity, item.Price))
	}

	return order.RestoreOrder(id, order.Details{
		CustomerName: dto.CustomerName,
		Address:      dto.Address,
		PaymentType:  dto.PaymentType,
		DeliveryType: kernel.DeliveryType(dto.DeliveryType),
		Status:       dto.Status,
	}, items)
}
