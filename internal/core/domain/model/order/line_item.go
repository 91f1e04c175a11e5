package order

import (
	"errors"
	"math"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/errs"
	"dinein/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// lineItemMinQuantity is the smallest quantity a line item may carry.
const lineItemMinQuantity = 1

// LineItem is a single entry of an order: a reference to a menu and how many
// of it were ordered. Line items are owned by their Order, created with it
// and immutable afterwards.
type LineItem struct { //nolint:recvcheck //using for validation
	menuID   kernel.UUID
	quantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item for the given menu.
// The quantity must be at least 1.
func NewLineItem(menuID kernel.UUID, quantity kernel.Quantity) (LineItem, error) {
	lineItem := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		lineItem.setMenuID(menuID),
		lineItem.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return lineItem, nil
}

// Validate ensures the LineItem was created through its constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// MenuID returns the referenced menu's identifier.
func (li LineItem) MenuID() kernel.UUID {
	return li.menuID
}

// Quantity returns how many of the menu were ordered.
func (li LineItem) Quantity() kernel.Quantity {
	return li.quantity
}

func (li *LineItem) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}
	li.menuID = menuID
	return nil
}

func (li *LineItem) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if quantity.Value() < lineItemMinQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity.Value(), lineItemMinQuantity, int64(math.MaxInt64))
	}

	li.quantity = quantity
	return nil
}
