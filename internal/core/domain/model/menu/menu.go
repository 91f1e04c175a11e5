package menu

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/errs"
	"dinein/internal/pkg/guard"
)

var (
	// ErrMenuIsNotConstructed is returned when a Menu instance was not created
	// through the NewMenu or RestoreMenu constructors.
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")

	// ErrMenuProductsAreEmpty is returned when a menu is declared without any line items.
	ErrMenuProductsAreEmpty = errs.NewValueIsRequiredError("menu products")
)

// Menu is an aggregate root representing a named, priced bundle of product
// line items sold as a unit. A menu belongs to exactly one menu group.
//
// Invariants:
//   - Must have a valid unique identifier and menu group reference
//   - Name must be non-blank, price non-negative
//   - Must contain at least one line item
//   - Declared price must not exceed the sum of its line items' product prices;
//     that cross-aggregate rule is enforced by services.MenuPricingValidator
//     because it needs the resolved products
//   - Immutable after creation
type Menu struct {
	id           kernel.UUID
	name         kernel.Name
	price        kernel.Price
	menuGroupID  kernel.UUID
	menuProducts []MenuProduct

	guard guard.ConstructorGuard
}

// NewMenu creates a Menu with its line items.
// The line item list must be non-empty; every line item must be constructed.
func NewMenu(
	id kernel.UUID,
	name kernel.Name,
	price kernel.Price,
	menuGroupID kernel.UUID,
	menuProducts []MenuProduct,
) (*Menu, error) {
	menu := &Menu{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		menu.setID(id),
		menu.setName(name),
		menu.setPrice(price),
		menu.setMenuGroupID(menuGroupID),
		menu.setMenuProducts(menuProducts),
	); err != nil {
		return nil, err
	}

	return menu, nil
}

// RestoreMenu reconstructs a Menu from persistent storage.
func RestoreMenu(
	id kernel.UUID,
	name kernel.Name,
	price kernel.Price,
	menuGroupID kernel.UUID,
	menuProducts []MenuProduct,
) (*Menu, error) {
	return NewMenu(id, name, price, menuGroupID, menuProducts)
}

// Validate ensures the Menu was created through its constructor.
func (m *Menu) Validate() error {
	if m == nil || m.guard.Validate(ErrMenuIsNotConstructed) != nil {
		return ErrMenuIsNotConstructed
	}

	return nil
}

// IsEqual compares two menus by their unique identifiers.
func (m *Menu) IsEqual(other *Menu) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu's unique identifier.
func (m *Menu) ID() kernel.UUID {
	return m.id
}

// Name returns the menu's display name.
func (m *Menu) Name() kernel.Name {
	return m.name
}

// Price returns the menu's declared price.
func (m *Menu) Price() kernel.Price {
	return m.price
}

// MenuGroupID returns the identifier of the group the menu belongs to.
func (m *Menu) MenuGroupID() kernel.UUID {
	return m.menuGroupID
}

// MenuProducts returns a copy of the menu's line items.
func (m *Menu) MenuProducts() []MenuProduct {
	items := make([]MenuProduct, len(m.menuProducts))
	copy(items, m.menuProducts)
	return items
}

// ProductIDs returns the identifiers of all products referenced by the menu.
func (m *Menu) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(m.menuProducts))
	for _, mp := range m.menuProducts {
		ids = append(ids, mp.ProductID())
	}
	return ids
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name kernel.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *Menu) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}
	m.menuGroupID = menuGroupID
	return nil
}

func (m *Menu) setMenuProducts(menuProducts []MenuProduct) error {
	if len(menuProducts) == 0 {
		return ErrMenuProductsAreEmpty
	}

	for _, mp := range menuProducts {
		if err := mp.Validate(); err != nil {
			return err
		}
	}

	m.menuProducts = make([]MenuProduct, len(menuProducts))
	copy(m.menuProducts, menuProducts)
	return nil
}
