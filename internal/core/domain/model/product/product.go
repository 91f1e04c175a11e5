// Package product contains the Product aggregate: an item the kitchen can
// prepare, sold as part of one or more menus. A product's price is fixed at
// creation and never changes afterwards; menu pricing checks rely on that.
package product

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct or RestoreProduct constructors.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an aggregate root representing a single purchasable item.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must be non-blank
//   - Price must be non-negative
//   - Immutable after creation
type Product struct {
	id    kernel.UUID
	name  kernel.Name
	price kernel.Price

	guard guard.ConstructorGuard
}

// NewProduct creates a Product with a validated name and price.
func NewProduct(id kernel.UUID, name kernel.Name, price kernel.Price) (*Product, error) {
	product := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage.
// The restored product behaves identically to one created via NewProduct.
func RestoreProduct(id kernel.UUID, name kernel.Name, price kernel.Price) (*Product, error) {
	return NewProduct(id, name, price)
}

// Validate ensures the Product was created through its constructor.
func (p *Product) Validate() error {
	if p == nil || p.guard.Validate(ErrProductIsNotConstructed) != nil {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() kernel.Name {
	return p.name
}

// Price returns the product's unit price.
func (p *Product) Price() kernel.Price {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name kernel.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
