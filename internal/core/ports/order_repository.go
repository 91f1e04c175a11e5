package ports

import (
	"context"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByOrderTableID retrieves all orders bound to the given table.
	// Table operations call this inside their transaction to check for
	// orders that have not reached Completion.
	GetAllByOrderTableID(ctx context.Context, orderTableID kernel.UUID) ([]*order.Order, error)

	// GetAllByOrderTableIDs retrieves all orders bound to any of the given tables.
	// Used by the ungroup operation to check every member table in one query.
	GetAllByOrderTableIDs(ctx context.Context, orderTableIDs []kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
