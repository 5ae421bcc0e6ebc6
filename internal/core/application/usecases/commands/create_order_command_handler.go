package commands

import (
	"context"
	"errors"

	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"
)

// CreateOrderCommandHandler saves an order and its items in one transaction.
// Item back references are filled by the aggregate, so clients never send them.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.UnsetID, details, items)
//
//	saved, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// saved.ID() and every saved.Items()[i].ID() are now assigned
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle inserts a new order, or overwrites the order named by the command ID
// when it exists. Returns the stored order with generated identifiers.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	var existing *order.Order
	if cmd.OrderID().IsSet() {
		found, err := orderRepo.Get(ctx, cmd.OrderID())
		switch {
		case err == nil:
			existing = found
		case errors.Is(err, errs.ErrObjectNotFound):
			// unknown ids are ignored and a new order is inserted
		default:
			return nil, err
		}
	}

	var (
		saved *order.Order
		err   error
	)
	if existing != nil {
		if err = existing.Overwrite(cmd.Details(), toItems(cmd.Items())); err != nil {
			return nil, err
		}
		saved, err = orderRepo.Update(ctx, existing)
	} else {
		var created *order.Order
		created, err = order.NewOrder(cmd.Details(), toItems(cmd.Items()))
		if err != nil {
			return nil, err
		}
		saved, err = orderRepo.Add(ctx, created)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}

func toItems(specs []ItemSpec) []*order.Item {
	items := make([]*order.Item, 0, len(specs))
	for _, spec := range specs {
		items = append(items, order.RestoreItem(spec.ID, spec.Name, spec.Quantity, spec.Price))
	}
	return items
}
