package commands_test

import (
	"testing"

	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"
	"dinein/internal/core/domain/model/table"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeTableEmptyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	cmd, _ := commands.NewChangeTableEmptyCommand(tableID, true)
	orderTable := occupiedTable(t, tableID)
	completed := orderFixture(t, kernel.NewUUID(), order.Completion)

	tableRepo := new(MockOrderTableRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, tableID).Return(orderTable, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByOrderTableID", mock.Anything, tableID).
			Return([]*order.Order{completed}, nil).Once(),
		tableRepo.On("Update", mock.Anything, orderTable).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeTableEmptyCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, orderTable.IsEmpty())
	tableRepo.AssertExpectations(t)
}

func TestChangeTableEmptyCommandHandler_Handle_ActiveOrderExists(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	cmd, _ := commands.NewChangeTableEmptyCommand(tableID, true)
	orderTable := occupiedTable(t, tableID)
	cooking := orderFixture(t, kernel.NewUUID(), order.Cooking)

	tableRepo := new(MockOrderTableRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, tableID).Return(orderTable, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllByOrderTableID", mock.Anything, tableID).
			Return([]*order.Order{cooking}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTableUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeTableEmptyCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, table.ErrActiveOrderExists)
	require.False(t, orderTable.IsEmpty())
	tableRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
