package commands_test

import (
	"testing"

	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	tableID := kernel.NewUUID()
	menuID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(id, tableID, []commands.OrderLineItem{
		{MenuID: menuID, Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, tableID, cmd.OrderTableID())
	require.Len(t, cmd.LineItems(), 1)
	assert.Equal(t, menuID, cmd.LineItems()[0].MenuID())
	assert.Equal(t, int64(2), cmd.LineItems()[0].Quantity().Value())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), []commands.OrderLineItem{
		{MenuID: kernel.NewUUID(), Quantity: 1},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyLineItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrOrderLineItemsAreEmpty)
}

func TestNewCreateOrderCommand_ZeroQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), []commands.OrderLineItem{
		{MenuID: kernel.NewUUID(), Quantity: 0},
	})

	require.Error(t, err)
}
