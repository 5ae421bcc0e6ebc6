package order

import (
	"ordermanagement/internal/core/domain/model/kernel"
)

// Item is a line of an order: a product name, a quantity and a unit price.
// An item belongs to at most one order. The owning order is a non-owning back
// reference, set when the item is attached and never changed afterwards.
type Item struct {
	// id is assigned by the store; zero until the item is persisted
	id kernel.ID

	// order is the aggregate the item is attached to (nil while detached)
	order *Order

	name     string
	quantity int
	price    float64
}

// NewItem creates a detached item. Quantity and price are taken as given;
// missing values arrive here as zero and contribute nothing to totals.
func NewItem(name string, quantity int, price float64) *Item {
	return &Item{
		name:     name,
		quantity: quantity,
		price:    price,
	}
}

// RestoreItem recreates a detached item that already carries an identifier,
// either loaded from storage or echoed back by a client. Whether the id
// survives is decided by the order the item is attached to.
func RestoreItem(id kernel.ID, name string, quantity int, price float64) *Item {
	item := NewItem(name, quantity, price)
	item.id = id
	return item
}

// ID returns the item identifier, UnsetID for items not yet stored.
func (i *Item) ID() kernel.ID {
	return i.id
}

// OrderID returns the identifier of the owning order, UnsetID when detached
// or when the owner has not been stored yet.
func (i *Item) OrderID() kernel.ID {
	if i.order == nil {
		return kernel.UnsetID
	}
	return i.order.id
}

// Name returns the product name.
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i *Item) Price() float64 {
	return i.price
}

// Subtotal is price × quantity.
func (i *Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}
