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

func emptyTable(t *testing.T) *table.OrderTable {
	t.Helper()
	tbl, err := table.NewOrderTable(kernel.NewUUID(), true)
	require.NoError(t, err)
	return tbl
}

func TestNewTableGroup(t *testing.T) {
	now := time.Now()

	t.Run("should group two empty ungrouped tables", func(t *testing.T) {
		first := emptyTable(t)
		second := emptyTable(t)

		group, err := table.NewTableGroup(kernel.NewUUID(), []*table.OrderTable{first, second}, now)

		require.NoError(t, err)
		require.NoError(t, group.Validate())
		assert.Equal(t, now, group.CreatedAt())
		assert.Len(t, group.OrderTableIDs(), 2)

		require.NotNil(t, first.TableGroupID())
		require.NotNil(t, second.TableGroupID())
		assert.True(t, first.TableGroupID().IsEqual(group.ID()))
		assert.True(t, second.TableGroupID().IsEqual(group.ID()))
	})

	t.Run("should fail with fewer than two tables", func(t *testing.T) {
		single := emptyTable(t)

		group, err := table.NewTableGroup(kernel.NewUUID(), []*table.OrderTable{single}, now)

		require.Error(t, err)
		assert.Nil(t, group)
		require.ErrorIs(t, err, table.ErrNotEnoughTables)
		assert.Nil(t, single.TableGroupID())
	})

	t.Run("should fail when a candidate is not empty", func(t *testing.T) {
		first := emptyTable(t)
		occupied, _ := table.NewOrderTable(kernel.NewUUID(), false)

		group, err := table.NewTableGroup(kernel.NewUUID(), []*table.OrderTable{first, occupied}, now)

		require.Error(t, err)
		assert.Nil(t, group)
		require.ErrorIs(t, err, table.ErrTableNotEmpty)
		// no candidate was mutated
		assert.Nil(t, first.TableGroupID())
		assert.Nil(t, occupied.TableGroupID())
	})

	t.Run("should fail when a candidate is already grouped", func(t *testing.T) {
		first := emptyTable(t)
		second := emptyTable(t)
		_, err := table.NewTableGroup(kernel.NewUUID(), []*table.OrderTable{first, second}, now)
		require.NoError(t, err)

		third := emptyTable(t)
		group, err := table.NewTableGroup(kernel.NewUUID(), []*table.OrderTable{first, third}, now)

		require.Error(t, err)
		assert.Nil(t, group)
		require.ErrorIs(t, err, table.ErrTableAlreadyGrouped)
		assert.Nil(t, third.TableGroupID())
	})

	t.Run("should fail when the same table appears twice", func(t *testing.T) {
		first := emptyTable(t)

		group, err := table.NewTableGroup(kernel.NewUUID(), []*table.OrderTable{first, first}, now)

		require.Error(t, err)
		assert.Nil(t, group)
		require.ErrorIs(t, err, table.ErrDuplicateTables)
	})

	t.Run("should fail with zero creation time", func(t *testing.T) {
		first := emptyTable(t)
		second := emptyTable(t)

		group, err := table.NewTableGroup(kernel.NewUUID(), []*table.OrderTable{first, second}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, group)
	})
}

func TestRestoreTableGroup(t *testing.T) {
	t.Run("should restore group with member ids", func(t *testing.T) {
		ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		group, err := table.RestoreTableGroup(kernel.NewUUID(), ids, time.Now())

		require.NoError(t, err)
		assert.Len(t, group.OrderTableIDs(), 2)
	})

	t.Run("should fail with fewer than two member ids", func(t *testing.T) {
		group, err := table.RestoreTableGroup(kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()}, time.Now())

		require.Error(t, err)
		assert.Nil(t, group)
		require.ErrorIs(t, err, table.ErrNotEnoughTables)
	})
}

func TestTableGroup_Ungroup(t *testing.T) {
	now := time.Now()

	makeGroup := func(t *testing.T) (*table.TableGroup, *table.OrderTable, *table.OrderTable) {
		t.Helper()
		first := emptyTable(t)
		second := emptyTable(t)
		group, err := table.NewTableGroup(kernel.NewUUID(), []*table.OrderTable{first, second}, now)
		require.NoError(t, err)
		return group, first, second
	}

	t.Run("should release all members when no active orders exist", func(t *testing.T) {
		group, first, second := makeGroup(t)
		completed := orderWithStatus(t, first.ID(), order.Completion)

		err := group.Ungroup([]*table.OrderTable{first, second}, []*order.Order{completed})

		require.NoError(t, err)
		assert.Nil(t, first.TableGroupID())
		assert.Nil(t, second.TableGroupID())
	})

	t.Run("should fail when any member has a cooking order", func(t *testing.T) {
		group, first, second := makeGroup(t)
		cooking := orderWithStatus(t, first.ID(), order.Cooking)

		err := group.Ungroup([]*table.OrderTable{first, second}, []*order.Order{cooking})

		require.Error(t, err)
		require.ErrorIs(t, err, table.ErrActiveOrderExists)
		// no member was released
		assert.NotNil(t, first.TableGroupID())
		assert.NotNil(t, second.TableGroupID())
	})

	t.Run("should fail when any member has a meal order", func(t *testing.T) {
		group, first, second := makeGroup(t)
		meal := orderWithStatus(t, second.ID(), order.Meal)

		err := group.Ungroup([]*table.OrderTable{first, second}, []*order.Order{meal})

		require.Error(t, err)
		require.ErrorIs(t, err, table.ErrActiveOrderExists)
		assert.NotNil(t, first.TableGroupID())
		assert.NotNil(t, second.TableGroupID())
	})
}
