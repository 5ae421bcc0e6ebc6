package order

import (
	"errors"
	"fmt"
	"math"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details holds the scalar attributes of an order. None of them is validated:
// status, payment type and delivery type are free text.
type Details struct {
	CustomerName string
	Address      string
	PaymentType  string
	DeliveryType kernel.DeliveryType
	Status       string
}

// Order is the aggregate root of the service. It owns an ordered collection of
// items exclusively: an item cannot be shared with another order and does not
// outlive it.
//
// Delivery cost and total are derived on every read and never stored.
type Order struct {
	// id is assigned by the store on insert (UnsetID before that)
	id kernel.ID

	details Details

	items []*Item

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates an order that has not been stored yet. Every item is
// attached to the new order; identifiers carried by the items are dropped
// because a new order cannot own items that already exist.
// Returns errs.ValueIsInvalidError when an item subtotal or the order total
// is not a finite number.
//
// Example:
//
//	o, err := order.NewOrder(order.Details{
//	    CustomerName: "Nimal Perera",
//	    DeliveryType: kernel.SpeedPost,
//	    Status:       "Pending",
//	}, []*order.Item{order.NewItem("Tea", 2, 450)})
func NewOrder(details Details, items []*Item) (*Order, error) {
	o := &Order{
		details:       details,
		isConstructed: true,
	}
	if err := o.checkItems(items); err != nil {
		return nil, err
	}
	if err := checkAmounts(details, items); err != nil {
		return nil, err
	}

	for _, item := range items {
		item.id = kernel.UnsetID
		o.attach(item)
	}

	return o, nil
}

// RestoreOrder rebuilds a stored order. Item identifiers are kept as given.
func RestoreOrder(id kernel.ID, details Details, items []*Item) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		details:       details,
		isConstructed: true,
	}
	if err := o.checkItems(items); err != nil {
		return nil, err
	}

	for _, item := range items {
		o.attach(item)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the order identifier, UnsetID if the order is not stored yet.
func (o *Order) ID() kernel.ID {
	return o.id
}

// Details returns a copy of the scalar attributes.
func (o *Order) Details() Details {
	return o.details
}

// CustomerName returns the name the order is placed under.
func (o *Order) CustomerName() string {
	return o.details.CustomerName
}

// Address returns the delivery address as submitted.
func (o *Order) Address() string {
	return o.details.Address
}

// PaymentType returns the free text payment method.
func (o *Order) PaymentType() string {
	return o.details.PaymentType
}

// DeliveryType returns the delivery method; it determines DeliveryCost.
func (o *Order) DeliveryType() kernel.DeliveryType {
	return o.details.DeliveryType
}

// Status returns the free text status. No transitions are enforced.
func (o *Order) Status() string {
	return o.details.Status
}

// Items returns the items in order. The slice is a copy; the items are not.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// DeliveryCost is derived from the delivery type.
func (o *Order) DeliveryCost() float64 {
	return o.details.DeliveryType.Cost()
}

// Total is the sum of item subtotals plus the delivery cost. An order without
// items costs exactly its delivery.
func (o *Order) Total() float64 {
	var itemsTotal float64
	for _, item := range o.items {
		itemsTotal += item.Subtotal()
	}
	return itemsTotal + o.DeliveryCost()
}

// ChangeStatus overwrites the status with any non-empty string and reports
// whether it did. An empty status leaves the order untouched.
func (o *Order) ChangeStatus(status string) bool {
	if status == "" {
		return false
	}
	o.details.Status = status
	return true
}

// Overwrite replaces every attribute and the whole item collection, keeping the
// order identity.
//
// Ownership rules for the incoming items:
//   - an item whose id belongs to this order keeps it and is updated in place
//   - any other id is dropped and the item is stored as new
//   - current items missing from the new collection are orphans and get removed
func (o *Order) Overwrite(details Details, items []*Item) error {
	if err := o.checkItems(items); err != nil {
		return err
	}
	if err := checkAmounts(details, items); err != nil {
		return err
	}

	owned := make(map[kernel.ID]struct{}, len(o.items))
	for _, item := range o.items {
		if item.id.IsSet() {
			owned[item.id] = struct{}{}
		}
		item.order = nil
	}

	o.details = details
	o.items = make([]*Item, 0, len(items))
	for _, item := range items {
		if _, ok := owned[item.id]; ok {
			// an id may only be claimed once
			delete(owned, item.id)
		} else {
			item.id = kernel.UnsetID
		}
		o.attach(item)
	}

	return nil
}

func (o *Order) checkItems(items []*Item) error {
	seen := make(map[*Item]struct{}, len(items))
	for _, item := range items {
		if item == nil {
			return errs.NewValueIsRequiredError("item")
		}
		if item.order != nil && item.order != o {
			return errs.NewValueIsInvalidErrorWithCause(
				"item",
				fmt.Errorf("item %q already belongs to order %s", item.name, item.order.id),
			)
		}
		if _, ok := seen[item]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"item",
				fmt.Errorf("item %q is listed twice", item.name),
			)
		}
		seen[item] = struct{}{}
	}
	return nil
}

// checkAmounts rejects amounts that cannot be represented in a response.
func checkAmounts(details Details, items []*Item) error {
	total := details.DeliveryType.Cost()
	for _, item := range items {
		subtotal := item.Subtotal()
		if !isFinite(subtotal) {
			return errs.NewValueIsInvalidErrorWithCause(
				"item",
				fmt.Errorf("subtotal of item %q is not a finite number", item.name),
			)
		}
		total += subtotal
	}

	if !isFinite(total) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total",
			errors.New("order total is not a finite number"),
		)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func (o *Order) attach(item *Item) {
	item.order = o
	o.items = append(o.items, item)
}
