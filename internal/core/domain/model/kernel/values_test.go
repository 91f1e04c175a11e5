package kernel_test

import (
	"fmt"
	"testing"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	t.Run("should create name from non-blank text", func(t *testing.T) {
		name, err := kernel.NewName("Lunch Set A")

		require.NoError(t, err)
		require.NoError(t, name.Validate())
		assert.Equal(t, "Lunch Set A", name.Value())
		assert.Equal(t, "Lunch Set A", name.String())
	})

	t.Run("should reject blank text", func(t *testing.T) {
		blanks := []string{"", " ", "\t", "\n", "   "}

		for _, blank := range blanks {
			t.Run(fmt.Sprintf("should reject %q", blank), func(t *testing.T) {
				_, err := kernel.NewName(blank)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var name kernel.Name

		err := name.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrNameIsNotConstructed, err)
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.NewName("menu")
		b, _ := kernel.NewName("menu")
		c, _ := kernel.NewName("other")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestNewPrice(t *testing.T) {
	t.Run("should create price with non-negative amount", func(t *testing.T) {
		amounts := []int64{0, 1, 1500, 999999}

		for _, amount := range amounts {
			t.Run(fmt.Sprintf("should accept %d", amount), func(t *testing.T) {
				price, err := kernel.NewPrice(amount)

				require.NoError(t, err)
				require.NoError(t, price.Validate())
				assert.Equal(t, amount, price.Amount())
			})
		}
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewPrice(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var price kernel.Price

		err := price.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrPriceIsNotConstructed, err)
	})

	t.Run("should add prices", func(t *testing.T) {
		a, _ := kernel.NewPrice(100)
		b, _ := kernel.NewPrice(250)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(350), sum.Amount())
	})

	t.Run("should fail to add unconstructed price", func(t *testing.T) {
		a, _ := kernel.NewPrice(100)
		var b kernel.Price

		_, err := a.Add(b)

		require.Error(t, err)
	})

	t.Run("should multiply by quantity", func(t *testing.T) {
		price, _ := kernel.NewPrice(200)
		qty, _ := kernel.NewQuantity(3)

		total, err := price.MultiplyQuantity(qty)

		require.NoError(t, err)
		assert.Equal(t, int64(600), total.Amount())
	})

	t.Run("should compare prices", func(t *testing.T) {
		low, _ := kernel.NewPrice(100)
		high, _ := kernel.NewPrice(200)
		sameAsLow, _ := kernel.NewPrice(100)

		assert.True(t, high.IsGreaterThan(low))
		assert.False(t, low.IsGreaterThan(high))
		assert.False(t, low.IsGreaterThan(sameAsLow))
		assert.True(t, low.IsEqual(sameAsLow))
	})
}

func TestNewQuantity(t *testing.T) {
	t.Run("should create quantity with non-negative value", func(t *testing.T) {
		qty, err := kernel.NewQuantity(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), qty.Value())
	})

	t.Run("should reject negative value", func(t *testing.T) {
		_, err := kernel.NewQuantity(-5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var qty kernel.Quantity

		err := qty.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrQuantityIsNotConstructed, err)
	})
}

func TestNewNumberOfGuests(t *testing.T) {
	t.Run("should create guest count with non-negative value", func(t *testing.T) {
		guests, err := kernel.NewNumberOfGuests(4)

		require.NoError(t, err)
		require.NoError(t, guests.Validate())
		assert.Equal(t, 4, guests.Value())
	})

	t.Run("should accept zero guests", func(t *testing.T) {
		guests, err := kernel.NewNumberOfGuests(0)

		require.NoError(t, err)
		assert.Equal(t, 0, guests.Value())
	})

	t.Run("should reject negative value", func(t *testing.T) {
		_, err := kernel.NewNumberOfGuests(-3)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "numberOfGuests")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var guests kernel.NumberOfGuests

		err := guests.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrNumberOfGuestsIsNotConstructed, err)
	})
}
