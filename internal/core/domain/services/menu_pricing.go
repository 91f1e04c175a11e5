package services

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"
	"dinein/internal/core/domain/model/product"
	"dinein/internal/pkg/errs"
)

// ErrMenuPriceExceedsTotal is returned when a menu's declared price is greater
// than the summed prices of its product line items. A menu may be sold at a
// discount relative to its parts, never at a premium.
var ErrMenuPriceExceedsTotal = errors.New("menu price cannot exceed the sum of its product prices")

// MenuPricingValidator is a domain service that checks a menu's declared price
// against the prices of the products it bundles.
//
// Business rules:
//   - The menu must carry at least one line item
//   - Every referenced product must be among the resolved products
//   - The declared price must not exceed Σ(product price × quantity)
//
// The validator never performs lookups itself: the products are resolved by
// the caller before validation, which keeps the service pure and testable.
//
// Example usage:
//
//	validator := NewMenuPricingValidator()
//	products, _ := productRepo.GetAllByIDs(ctx, m.ProductIDs())
//	if err := validator.Validate(m, products); err != nil {
//	    // Menu is priced invalidly
//	    return err
//	}
type MenuPricingValidator struct{}

// NewMenuPricingValidator creates a new MenuPricingValidator instance.
func NewMenuPricingValidator() MenuPricingValidator {
	return MenuPricingValidator{}
}

// Validate checks the menu's declared price against the resolved products.
//
// Fails with menu.ErrMenuProductsAreEmpty when the menu carries no line items,
// with an ObjectNotFoundError when a line item references a product missing
// from the resolved slice, and with ErrMenuPriceExceedsTotal when the declared
// price is greater than the summed line item prices.
func (v MenuPricingValidator) Validate(m *menu.Menu, products []*product.Product) error {
	if err := m.Validate(); err != nil {
		return err
	}

	menuProducts := m.MenuProducts()
	if len(menuProducts) == 0 {
		return menu.ErrMenuProductsAreEmpty
	}

	pricesByProduct := make(map[kernel.UUID]kernel.Price, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		pricesByProduct[p.ID()] = p.Price()
	}

	total, err := kernel.NewPrice(0)
	if err != nil {
		return err
	}

	for _, mp := range menuProducts {
		price, ok := pricesByProduct[mp.ProductID()]
		if !ok {
			return errs.NewObjectNotFoundError("product", mp.ProductID().String())
		}

		linePrice, multiplyErr := price.MultiplyQuantity(mp.Quantity())
		if multiplyErr != nil {
			return multiplyErr
		}

		total, err = total.Add(linePrice)
		if err != nil {
			return err
		}
	}

	if m.Price().IsGreaterThan(total) {
		return ErrMenuPriceExceedsTotal
	}

	return nil
}
