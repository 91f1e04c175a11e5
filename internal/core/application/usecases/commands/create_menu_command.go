package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"
	"dinein/internal/pkg/guard"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// MenuProductItem carries one raw (product, quantity) pair of a menu
// creation request before domain validation.
type MenuProductItem struct {
	ProductID kernel.UUID
	Quantity  int64
}

// CreateMenuCommand represents a request to compose a new menu from products.
// The menu's declared price is checked against the sum of its product prices
// by the handler; the command only validates shape.
//
// Example:
//
//	items := []MenuProductItem{{ProductID: chickenID, Quantity: 2}}
//	cmd, err := NewCreateMenuCommand(kernel.NewUUID(), "Two Fried Chickens", 1900, groupID, items)
//	if err != nil {
//	    return fmt.Errorf("invalid menu data: %w", err)
//	}
//
//	handler := NewCreateMenuCommandHandler(uowFactory, pricingValidator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create menu: %w", err)
//	}
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID       kernel.UUID
	name         kernel.Name
	price        kernel.Price
	menuGroupID  kernel.UUID
	menuProducts []menu.MenuProduct

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand creates a command to compose a new menu.
// Validates identifiers, the name, the price, and every line item; fails with
// menu.ErrMenuProductsAreEmpty when no line items are given.
func NewCreateMenuCommand(
	menuID kernel.UUID,
	name string,
	price int64,
	menuGroupID kernel.UUID,
	menuProducts []MenuProductItem,
) (CreateMenuCommand, error) {
	menuCommand := CreateMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		menuCommand.setMenuID(menuID),
		menuCommand.setName(name),
		menuCommand.setPrice(price),
		menuCommand.setMenuGroupID(menuGroupID),
		menuCommand.setMenuProducts(menuProducts),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return menuCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

// MenuID returns the unique identifier for the menu.
func (c CreateMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

// Name returns the menu name.
func (c CreateMenuCommand) Name() kernel.Name {
	return c.name
}

// Price returns the declared menu price.
func (c CreateMenuCommand) Price() kernel.Price {
	return c.price
}

// MenuGroupID returns the identifier of the group the menu belongs to.
func (c CreateMenuCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

// MenuProducts returns the validated menu line items.
func (c CreateMenuCommand) MenuProducts() []menu.MenuProduct {
	items := make([]menu.MenuProduct, len(c.menuProducts))
	copy(items, c.menuProducts)
	return items
}

func (c *CreateMenuCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}

	c.menuID = menuID
	return nil
}

func (c *CreateMenuCommand) setName(name string) error {
	value, err := kernel.NewName(name)
	if err != nil {
		return err
	}

	c.name = value
	return nil
}

func (c *CreateMenuCommand) setPrice(price int64) error {
	value, err := kernel.NewPrice(price)
	if err != nil {
		return err
	}

	c.price = value
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}

	c.menuGroupID = menuGroupID
	return nil
}

func (c *CreateMenuCommand) setMenuProducts(items []MenuProductItem) error {
	if len(items) == 0 {
		return menu.ErrMenuProductsAreEmpty
	}

	menuProducts := make([]menu.MenuProduct, 0, len(items))
	for _, item := range items {
		quantity, err := kernel.NewQuantity(item.Quantity)
		if err != nil {
			return err
		}

		menuProduct, err := menu.NewMenuProduct(item.ProductID, quantity)
		if err != nil {
			return err
		}

		menuProducts = append(menuProducts, menuProduct)
	}

	c.menuProducts = menuProducts
	return nil
}
