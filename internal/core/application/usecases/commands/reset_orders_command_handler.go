package commands

import (
	"context"
)

// ResetOrdersCommandHandler clears the order store in a single transaction.
type ResetOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResetOrdersCommandHandler creates a handler for the reset operation.
// Requires an OrderUoWFactory for transactional persistence.
func NewResetOrdersCommandHandler(uowFactory OrderUoWFactory) ResetOrdersCommandHandler {
	return ResetOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes every item and order and restarts both id sequences.
// Nothing is kept on failure: the transaction is rolled back.
// MySQL commits the sequence restart on its own, so there the reset is not atomic.
func (h *ResetOrdersCommandHandler) Handle(ctx context.Context, cmd ResetOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Reset(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
