package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"
	"dinein/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineItem carries one raw (menu, quantity) pair of an order creation
// request before domain validation.
type OrderLineItem struct {
	MenuID   kernel.UUID
	Quantity int64
}

// CreateOrderCommand represents a request to place a new order at a table.
//
// Example:
//
//	items := []OrderLineItem{{MenuID: menuID, Quantity: 1}}
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), tableID, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	orderTableID kernel.UUID
	lineItems    []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers and every line item; fails with
// order.ErrOrderLineItemsAreEmpty when no line items are given.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderTableID kernel.UUID,
	lineItems []OrderLineItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrderTableID(orderTableID),
		orderCommand.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderTableID returns the identifier of the table the order is placed at.
func (c CreateOrderCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// LineItems returns the validated order line items.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	items := make([]order.LineItem, len(c.lineItems))
	copy(items, c.lineItems)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}

	c.orderTableID = orderTableID
	return nil
}

func (c *CreateOrderCommand) setLineItems(items []OrderLineItem) error {
	if len(items) == 0 {
		return order.ErrOrderLineItemsAreEmpty
	}

	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		quantity, err := kernel.NewQuantity(item.Quantity)
		if err != nil {
			return err
		}

		lineItem, err := order.NewLineItem(item.MenuID, quantity)
		if err != nil {
			return err
		}

		lineItems = append(lineItems, lineItem)
	}

	c.lineItems = lineItems
	return nil
}
