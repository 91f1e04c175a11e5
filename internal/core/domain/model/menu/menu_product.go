package menu

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

// ErrMenuProductIsNotConstructed is returned when a MenuProduct was not created
// through the NewMenuProduct constructor.
var ErrMenuProductIsNotConstructed = errors.New("MenuProduct must be created via NewMenuProduct constructor")

// MenuProduct is a line item of a menu: a reference to a product and how many
// units of it the menu includes. It is owned by its Menu and immutable.
type MenuProduct struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  kernel.Quantity

	guard guard.ConstructorGuard
}

// NewMenuProduct creates a line item for the given product and quantity.
func NewMenuProduct(productID kernel.UUID, quantity kernel.Quantity) (MenuProduct, error) {
	menuProduct := MenuProduct{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		menuProduct.setProductID(productID),
		menuProduct.setQuantity(quantity),
	); err != nil {
		return MenuProduct{}, err
	}

	return menuProduct, nil
}

// Validate ensures the MenuProduct was created through its constructor.
func (mp MenuProduct) Validate() error {
	return mp.guard.Validate(ErrMenuProductIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (mp MenuProduct) ProductID() kernel.UUID {
	return mp.productID
}

// Quantity returns how many units of the product the menu includes.
func (mp MenuProduct) Quantity() kernel.Quantity {
	return mp.quantity
}

func (mp *MenuProduct) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	mp.productID = productID
	return nil
}

func (mp *MenuProduct) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	mp.quantity = quantity
	return nil
}
