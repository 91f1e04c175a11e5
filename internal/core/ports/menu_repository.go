package ports

import (
	"context"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu aggregates,
// including their owned line items.
type MenuRepository interface {
	// Add persists a new menu aggregate with its line items.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Get retrieves a menu aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// GetAllByIDs retrieves the menus matching the given identifiers.
	// Missing identifiers are silently omitted from the result; order
	// creation uses the count difference to detect dangling menu references.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.Menu, error)

	// GetAll retrieves every menu.
	GetAll(ctx context.Context) ([]*menu.Menu, error)
}

// MenuGroupRepository defines the persistence contract for menu groups.
type MenuGroupRepository interface {
	// Add persists a new menu group.
	Add(ctx context.Context, aggregate *menu.MenuGroup) error

	// Get retrieves a menu group by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuGroup, error)

	// GetAll retrieves every menu group.
	GetAll(ctx context.Context) ([]*menu.MenuGroup, error)
}
