package commands_test

import (
	"errors"
	"testing"

	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"
	"dinein/internal/core/domain/model/table"
	"dinein/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func occupiedTable(t *testing.T, id kernel.UUID) *table.OrderTable {
	t.Helper()
	orderTable, err := table.NewOrderTable(id, false)
	require.NoError(t, err)
	return orderTable
}

func menuFixture(t *testing.T, id kernel.UUID) *menu.Menu {
	t.Helper()
	name, err := kernel.NewName("menu")
	require.NoError(t, err)
	price, err := kernel.NewPrice(100)
	require.NoError(t, err)
	quantity, err := kernel.NewQuantity(1)
	require.NoError(t, err)
	menuProduct, err := menu.NewMenuProduct(kernel.NewUUID(), quantity)
	require.NoError(t, err)
	m, err := menu.NewMenu(id, name, price, kernel.NewUUID(), []menu.MenuProduct{menuProduct})
	require.NoError(t, err)
	return m
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	menuID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), tableID, []commands.OrderLineItem{
		{MenuID: menuID, Quantity: 1},
	})

	orderRepo := new(MockOrderRepository)
	tableRepo := new(MockOrderTableRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, tableID).Return(occupiedTable(t, tableID), nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{menuID}).
			Return([]*menu.Menu{menuFixture(t, menuID)}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_TableNotFound(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), tableID, []commands.OrderLineItem{
		{MenuID: kernel.NewUUID(), Quantity: 1},
	})

	tableRepo := new(MockOrderTableRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, tableID).
			Return(nil, errs.NewObjectNotFoundError("orderTableID", tableID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateOrderCommandHandler_Handle_MenuMismatch(t *testing.T) {
	ctx := t.Context()
	tableID := kernel.NewUUID()
	menuID := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), tableID, []commands.OrderLineItem{
		{MenuID: menuID, Quantity: 1},
	})

	tableRepo := new(MockOrderTableRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderTableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", mock.Anything, tableID).Return(occupiedTable(t, tableID), nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{menuID}).
			Return([]*menu.Menu{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderLineItemMenuMismatch)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), []commands.OrderLineItem{
		{MenuID: kernel.NewUUID(), Quantity: 1},
	})

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
