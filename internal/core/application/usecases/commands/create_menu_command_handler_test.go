package commands_test

import (
	"testing"

	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"
	"dinein/internal/core/domain/model/product"
	"dinein/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func menuGroupFixture(t *testing.T, id kernel.UUID) *menu.MenuGroup {
	t.Helper()
	name, err := kernel.NewName("recommended")
	require.NoError(t, err)
	group, err := menu.NewMenuGroup(id, name)
	require.NoError(t, err)
	return group
}

func productFixture(t *testing.T, id kernel.UUID, amount int64) *product.Product {
	t.Helper()
	name, err := kernel.NewName("fried chicken")
	require.NoError(t, err)
	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	p, err := product.RestoreProduct(id, name, price)
	require.NoError(t, err)
	return p
}

func TestCreateMenuCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	groupID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), "two chickens", 3000, groupID,
		[]commands.MenuProductItem{{ProductID: productID, Quantity: 2}})
	require.NoError(t, err)

	groupRepo := new(MockMenuGroupRepository)
	productRepo := new(MockProductRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuGroupRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", mock.Anything, groupID).Return(menuGroupFixture(t, groupID), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{productID}).
			Return([]*product.Product{productFixture(t, productID, 1600)}, nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Add", mock.Anything, mock.AnythingOfType("*menu.Menu")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMenuCommandHandler(factory, services.NewMenuPricingValidator())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	menuRepo.AssertExpectations(t)
}

func TestCreateMenuCommandHandler_Handle_PriceExceedsTotal(t *testing.T) {
	ctx := t.Context()
	groupID := kernel.NewUUID()
	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuCommand(kernel.NewUUID(), "overpriced", 3300, groupID,
		[]commands.MenuProductItem{{ProductID: productID, Quantity: 2}})
	require.NoError(t, err)

	groupRepo := new(MockMenuGroupRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuGroupRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", mock.Anything, groupID).Return(menuGroupFixture(t, groupID), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("GetAllByIDs", mock.Anything, []kernel.UUID{productID}).
			Return([]*product.Product{productFixture(t, productID, 1600)}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMenuCommandHandler(factory, services.NewMenuPricingValidator())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrMenuPriceExceedsTotal)
}

func TestNewCreateMenuCommand_EmptyMenuProducts(t *testing.T) {
	_, err := commands.NewCreateMenuCommand(kernel.NewUUID(), "menu", 100, kernel.NewUUID(), nil)
	require.Error(t, err)
	require.ErrorIs(t, err, menu.ErrMenuProductsAreEmpty)
}
