package commands_test

import (
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(3), "Shipped")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, kernel.ID(3), cmd.OrderID())
	assert.Equal(t, "Shipped", cmd.Status())
}

func TestNewUpdateOrderStatusCommand_EmptyStatusIsAccepted(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.ID(3), "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Status())
}

func TestNewUpdateOrderStatusCommand_UnsetOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.UnsetID, "Shipped")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestUpdateOrderStatusCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.UpdateOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
