package commands

import (
	"errors"

	"ordermanagement/internal/pkg/guard"
)

// ErrResetOrdersCommandIsNotConstructed is returned by Validate for a zero value command.
var ErrResetOrdersCommandIsNotConstructed = errors.New(
	"ResetOrdersCommand must be created via NewResetOrdersCommand constructor",
)

// ResetOrdersCommand wipes every order and item and restarts id generation,
// so the next order gets ID 1.
//
// Example:
//
//	cmd := NewResetOrdersCommand()
//	handler := NewResetOrdersCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("reset failed: %w", err)
//	}
type ResetOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewResetOrdersCommand creates the parameterless reset command.
func NewResetOrdersCommand() ResetOrdersCommand {
	return ResetOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ResetOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrResetOrdersCommandIsNotConstructed,
	)
}
