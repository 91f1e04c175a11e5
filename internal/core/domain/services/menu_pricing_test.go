package services_test

import (
	"testing"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"
	"dinein/internal/core/domain/model/product"
	"dinein/internal/core/domain/services"
	"dinein/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProduct(t *testing.T, amount int64) *product.Product {
	t.Helper()
	name, err := kernel.NewName("product")
	require.NoError(t, err)
	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), name, price)
	require.NoError(t, err)
	return p
}

func makeMenu(t *testing.T, amount int64, items []menu.MenuProduct) *menu.Menu {
	t.Helper()
	name, err := kernel.NewName("menu")
	require.NoError(t, err)
	price, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	m, err := menu.NewMenu(kernel.NewUUID(), name, price, kernel.NewUUID(), items)
	require.NoError(t, err)
	return m
}

func lineItemFor(t *testing.T, p *product.Product, quantity int64) menu.MenuProduct {
	t.Helper()
	qty, err := kernel.NewQuantity(quantity)
	require.NoError(t, err)
	mp, err := menu.NewMenuProduct(p.ID(), qty)
	require.NoError(t, err)
	return mp
}

func TestMenuPricingValidator_Validate(t *testing.T) {
	validator := services.NewMenuPricingValidator()

	t.Run("should accept menu priced below the product sum", func(t *testing.T) {
		p := makeProduct(t, 2)
		m := makeMenu(t, 1, []menu.MenuProduct{lineItemFor(t, p, 1)})

		err := validator.Validate(m, []*product.Product{p})

		require.NoError(t, err)
	})

	t.Run("should accept menu priced exactly at the product sum", func(t *testing.T) {
		p := makeProduct(t, 500)
		m := makeMenu(t, 1500, []menu.MenuProduct{lineItemFor(t, p, 3)})

		err := validator.Validate(m, []*product.Product{p})

		require.NoError(t, err)
	})

	t.Run("should reject menu priced above the product sum", func(t *testing.T) {
		p := makeProduct(t, 2)
		m := makeMenu(t, 3, []menu.MenuProduct{lineItemFor(t, p, 1)})

		err := validator.Validate(m, []*product.Product{p})

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrMenuPriceExceedsTotal)
	})

	t.Run("should sum across multiple line items with quantities", func(t *testing.T) {
		cheap := makeProduct(t, 100)
		pricey := makeProduct(t, 400)
		items := []menu.MenuProduct{
			lineItemFor(t, cheap, 2), // 200
			lineItemFor(t, pricey, 1), // 400
		}

		within := makeMenu(t, 600, items)
		above := makeMenu(t, 601, items)
		resolved := []*product.Product{cheap, pricey}

		require.NoError(t, validator.Validate(within, resolved))
		require.ErrorIs(t, validator.Validate(above, resolved), services.ErrMenuPriceExceedsTotal)
	})

	t.Run("should reject line item referencing unresolved product", func(t *testing.T) {
		known := makeProduct(t, 100)
		unknown := makeProduct(t, 100)
		m := makeMenu(t, 100, []menu.MenuProduct{lineItemFor(t, unknown, 1)})

		err := validator.Validate(m, []*product.Product{known})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject unconstructed menu", func(t *testing.T) {
		var m *menu.Menu

		err := validator.Validate(m, nil)

		require.Error(t, err)
		assert.Equal(t, menu.ErrMenuIsNotConstructed, err)
	})
}
