package ports

import (
	"context"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/table"
)

// OrderTableRepository defines the persistence contract for order tables.
type OrderTableRepository interface {
	// Add persists a new table aggregate.
	Add(ctx context.Context, aggregate *table.OrderTable) error

	// Update persists changes to an existing table aggregate.
	Update(ctx context.Context, aggregate *table.OrderTable) error

	// Get retrieves a table aggregate by its unique identifier.
	// Within a transaction the table's row stays locked until the
	// transaction finishes.
	Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error)

	// GetAllByIDs retrieves the tables matching the given identifiers,
	// locking each matched row like Get does.
	// Missing identifiers are silently omitted; group formation compares the
	// result length to detect dangling table references.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error)

	// GetAll retrieves every table.
	GetAll(ctx context.Context) ([]*table.OrderTable, error)
}

// TableGroupRepository defines the persistence contract for table groups.
// A group row exists only while the group is formed; ungrouping removes it,
// which is what makes a second ungroup of the same id fail with not-found.
type TableGroupRepository interface {
	// Add persists a new table group.
	Add(ctx context.Context, aggregate *table.TableGroup) error

	// Get retrieves a table group by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error)

	// Remove deletes a dissolved table group.
	Remove(ctx context.Context, id kernel.UUID) error
}
