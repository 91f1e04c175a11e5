package product_test

import (
	"testing"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()
	validName, _ := kernel.NewName("Fried Chicken")
	validPrice, _ := kernel.NewPrice(1600)

	t.Run("should create valid product with all valid parameters", func(t *testing.T) {
		p, err := product.NewProduct(validID, validName, validPrice)

		require.NoError(t, err)
		assert.NotNil(t, p)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, validName, p.Name())
		assert.Equal(t, validPrice, p.Price())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, validName, validPrice)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with unconstructed name", func(t *testing.T) {
		var invalidName kernel.Name

		p, err := product.NewProduct(validID, invalidName, validPrice)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "name must be created")
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var invalidPrice kernel.Price

		p, err := product.NewProduct(validID, validName, invalidPrice)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "price must be created")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidName kernel.Name

		p, err := product.NewProduct(invalidID, invalidName, validPrice)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name must be created")
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("should fail validation for nil product", func(t *testing.T) {
		var p *product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value product", func(t *testing.T) {
		p := &product.Product{}

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("should restore product from persisted state", func(t *testing.T) {
		id := kernel.NewUUID()
		name, _ := kernel.NewName("Seasoned Chicken")
		price, _ := kernel.NewPrice(1700)

		p, err := product.RestoreProduct(id, name, price)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
	})
}

func TestProduct_IsEqual(t *testing.T) {
	t.Run("should compare products by identifier", func(t *testing.T) {
		id := kernel.NewUUID()
		name, _ := kernel.NewName("Fried Chicken")
		otherName, _ := kernel.NewName("Honey Chicken")
		price, _ := kernel.NewPrice(1600)

		a, _ := product.NewProduct(id, name, price)
		b, _ := product.NewProduct(id, otherName, price)
		c, _ := product.NewProduct(kernel.NewUUID(), name, price)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(nil))
	})
}
