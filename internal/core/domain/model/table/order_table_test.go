package table_test

import (
	"testing"
	"time"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"
	"dinein/internal/core/domain/model/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderWithStatus(t *testing.T, tableID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	qty, err := kernel.NewQuantity(1)
	require.NoError(t, err)
	li, err := order.NewLineItem(kernel.NewUUID(), qty)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), tableID, status, []order.LineItem{li}, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrderTable(t *testing.T) {
	t.Run("should create table with zero guests and no group", func(t *testing.T) {
		id := kernel.NewUUID()

		tbl, err := table.NewOrderTable(id, true)

		require.NoError(t, err)
		require.NoError(t, tbl.Validate())
		assert.True(t, tbl.ID().IsEqual(id))
		assert.True(t, tbl.IsEmpty())
		assert.Equal(t, 0, tbl.NumberOfGuests().Value())
		assert.Nil(t, tbl.TableGroupID())
	})

	t.Run("should honor caller-chosen empty flag", func(t *testing.T) {
		tbl, err := table.NewOrderTable(kernel.NewUUID(), false)

		require.NoError(t, err)
		assert.False(t, tbl.IsEmpty())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var id kernel.UUID

		tbl, err := table.NewOrderTable(id, true)

		require.Error(t, err)
		assert.Nil(t, tbl)
	})

	t.Run("should fail validation for nil table", func(t *testing.T) {
		var tbl *table.OrderTable

		err := tbl.Validate()

		require.Error(t, err)
		assert.Equal(t, table.ErrOrderTableIsNotConstructed, err)
	})
}

func TestRestoreOrderTable(t *testing.T) {
	t.Run("should restore grouped table", func(t *testing.T) {
		groupID := kernel.NewUUID()
		guests, _ := kernel.NewNumberOfGuests(4)

		tbl, err := table.RestoreOrderTable(kernel.NewUUID(), &groupID, guests, false)

		require.NoError(t, err)
		require.NotNil(t, tbl.TableGroupID())
		assert.True(t, tbl.TableGroupID().IsEqual(groupID))
		assert.Equal(t, 4, tbl.NumberOfGuests().Value())
	})

	t.Run("should restore ungrouped table", func(t *testing.T) {
		guests, _ := kernel.NewNumberOfGuests(0)

		tbl, err := table.RestoreOrderTable(kernel.NewUUID(), nil, guests, true)

		require.NoError(t, err)
		assert.Nil(t, tbl.TableGroupID())
	})
}

func TestOrderTable_ChangeEmpty(t *testing.T) {
	t.Run("should toggle empty flag when ungrouped and without active orders", func(t *testing.T) {
		tbl, _ := table.NewOrderTable(kernel.NewUUID(), true)
		completed := orderWithStatus(t, tbl.ID(), order.Completion)

		err := tbl.ChangeEmpty(false, []*order.Order{completed})

		require.NoError(t, err)
		assert.False(t, tbl.IsEmpty())
	})

	t.Run("should toggle empty flag with no related orders", func(t *testing.T) {
		tbl, _ := table.NewOrderTable(kernel.NewUUID(), false)

		err := tbl.ChangeEmpty(true, nil)

		require.NoError(t, err)
		assert.True(t, tbl.IsEmpty())
	})

	t.Run("should fail while the table is grouped", func(t *testing.T) {
		groupID := kernel.NewUUID()
		guests, _ := kernel.NewNumberOfGuests(0)
		tbl, _ := table.RestoreOrderTable(kernel.NewUUID(), &groupID, guests, false)

		err := tbl.ChangeEmpty(true, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, table.ErrTableHasGroup)
		assert.False(t, tbl.IsEmpty())
	})

	t.Run("should fail while a cooking order exists", func(t *testing.T) {
		tbl, _ := table.NewOrderTable(kernel.NewUUID(), false)
		cooking := orderWithStatus(t, tbl.ID(), order.Cooking)

		err := tbl.ChangeEmpty(true, []*order.Order{cooking})

		require.Error(t, err)
		require.ErrorIs(t, err, table.ErrActiveOrderExists)
		assert.False(t, tbl.IsEmpty())
	})

	t.Run("should fail while a meal order exists", func(t *testing.T) {
		tbl, _ := table.NewOrderTable(kernel.NewUUID(), false)
		meal := orderWithStatus(t, tbl.ID(), order.Meal)

		err := tbl.ChangeEmpty(true, []*order.Order{meal})

		require.Error(t, err)
		require.ErrorIs(t, err, table.ErrActiveOrderExists)
	})
}

func TestOrderTable_ChangeNumberOfGuests(t *testing.T) {
	t.Run("should record guests on occupied table", func(t *testing.T) {
		tbl, _ := table.NewOrderTable(kernel.NewUUID(), false)
		guests, _ := kernel.NewNumberOfGuests(3)

		err := tbl.ChangeNumberOfGuests(guests)

		require.NoError(t, err)
		assert.Equal(t, 3, tbl.NumberOfGuests().Value())
	})

	t.Run("should fail on empty table", func(t *testing.T) {
		tbl, _ := table.NewOrderTable(kernel.NewUUID(), true)
		guests, _ := kernel.NewNumberOfGuests(3)

		err := tbl.ChangeNumberOfGuests(guests)

		require.Error(t, err)
		require.ErrorIs(t, err, table.ErrTableIsEmpty)
		assert.Equal(t, 0, tbl.NumberOfGuests().Value())
	})

	t.Run("should fail with unconstructed guest count", func(t *testing.T) {
		tbl, _ := table.NewOrderTable(kernel.NewUUID(), false)
		var guests kernel.NumberOfGuests

		err := tbl.ChangeNumberOfGuests(guests)

		require.Error(t, err)
	})
}
