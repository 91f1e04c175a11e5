package commands

import (
	"context"

	"dinein/internal/core/domain/model/menu"
	"dinein/internal/core/domain/services"
)

// CreateMenuCommandHandler handles the business logic for menu composition.
// Resolves the menu group and the referenced products inside one transaction
// and runs the pricing check before the menu is written.
type CreateMenuCommandHandler struct {
	uowFactory       MenuUoWFactory
	pricingValidator services.MenuPricingValidator
}

// NewCreateMenuCommandHandler creates a handler for menu composition.
// Requires a MenuUoWFactory and the pricing validator domain service.
func NewCreateMenuCommandHandler(
	uowFactory MenuUoWFactory,
	pricingValidator services.MenuPricingValidator,
) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory:       uowFactory,
		pricingValidator: pricingValidator,
	}
}

// Handle processes the menu composition command.
// Fails with an object-not-found error when the menu group or any referenced
// product does not exist, and with services.ErrMenuPriceExceedsTotal when the
// declared price exceeds the sum of the resolved product prices.
func (h *CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) error {
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

	group, err := uow.MenuGroupRepository().Get(ctx, cmd.MenuGroupID())
	if err != nil {
		return err
	}

	newMenu, err := menu.NewMenu(cmd.MenuID(), cmd.Name(), cmd.Price(), group.ID(), cmd.MenuProducts())
	if err != nil {
		return err
	}

	products, err := uow.ProductRepository().GetAllByIDs(ctx, newMenu.ProductIDs())
	if err != nil {
		return err
	}

	if err = h.pricingValidator.Validate(newMenu, products); err != nil {
		return err
	}

	if err = uow.MenuRepository().Add(ctx, newMenu); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
