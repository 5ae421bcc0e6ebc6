package commands_test

import (
	"errors"
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResetOrdersCommand_Validate(t *testing.T) {
	cmd := commands.NewResetOrdersCommand()
	require.NoError(t, cmd.Validate())

	var zero commands.ResetOrdersCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrResetOrdersCommandIsNotConstructed)
}

func TestResetOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Reset", mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResetOrdersCommandHandler(factory)
	err := h.Handle(ctx, commands.NewResetOrdersCommand())
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResetOrdersCommandHandler_Handle_ResetError(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Reset", mock.Anything).Return(errors.New("reset error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewResetOrdersCommandHandler(factory)
	err := h.Handle(ctx, commands.NewResetOrdersCommand())
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestResetOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewResetOrdersCommandHandler(factory)
	err := h.Handle(t.Context(), commands.ResetOrdersCommand{})
	require.ErrorIs(t, err, commands.ErrResetOrdersCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
