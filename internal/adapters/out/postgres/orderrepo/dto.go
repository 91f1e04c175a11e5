// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by table and status for the active-order checks table operations run.
type OrderDTO struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderTableID uuid.UUID          `gorm:"type:uuid;not null;index"`
	Status       int                `gorm:"type:int;not null;index"`
	CreatedAt    time.Time          `gorm:"not null"`
	LineItems    []OrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineItemDTO represents one order line item row.
// Keeps an auto-increment key so line items preserve insertion order.
type OrderLineItemDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	MenuID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for order line items.
func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation,
// including its line items.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := aggregate.LineItems()
	lineItems := make([]OrderLineItemDTO, 0, len(items))

	for _, item := range items {
		lineItems = append(lineItems, OrderLineItemDTO{
			OrderID:  orderID,
			MenuID:   item.MenuID().Bytes(),
			Quantity: item.Quantity().Value(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		OrderTableID: aggregate.OrderTableID().Bytes(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		LineItems:    lineItems,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderTableID, err := kernel.UUIDFromBytes(dto.OrderTableID[:])
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDto := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	return order.RestoreOrder(id, orderTableID, order.Status(dto.Status), lineItems, dto.CreatedAt)
}

// lineItemToDomain converts a line item DTO to its domain value object.
func lineItemToDomain(dto OrderLineItemDTO) (order.LineItem, error) {
	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(menuID, quantity)
}
