package commands

import (
	"errors"
	"math"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned by Validate for a zero value command.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemSpec describes one item of an order as submitted by a client.
// ID is optional and only kept when it already belongs to the order being overwritten.
type ItemSpec struct {
	ID       kernel.ID
	Name     string
	Quantity int
	Price    float64
}

// CreateOrderCommand represents a request to save an order with its items.
// Without an order ID, or with an ID no order has, a new order is inserted.
// With the ID of an existing order, that order is overwritten in full.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.UnsetID, order.Details{
//	    CustomerName: "Nimal Perera",
//	    DeliveryType: kernel.SpeedPost,
//	    Status:       "Pending",
//	}, []ItemSpec{{Name: "Tea", Quantity: 2, Price: 450}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	saved, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	details order.Details
	items   []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to save an order.
// The order ID may be unset; a negative ID is rejected.
func NewCreateOrderCommand(orderID kernel.ID, details order.Details, items []ItemSpec) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to overwrite, UnsetID for a new order.
func (c CreateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Details returns the scalar attributes the order is saved with.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// Items returns a copy of the submitted item specs.
func (c CreateOrderCommand) Items() []ItemSpec {
	items := make([]ItemSpec, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.ID) error {
	if orderID < kernel.UnsetID {
		return errs.NewValueIsOutOfRangeError("orderID", orderID.Int64(), 0, int64(math.MaxInt64))
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	for _, item := range items {
		if item.ID < kernel.UnsetID {
			return errs.NewValueIsOutOfRangeError("itemID", item.ID.Int64(), 0, int64(math.MaxInt64))
		}
	}

	c.items = make([]ItemSpec, len(items))
	copy(c.items, items)
	return nil
}
