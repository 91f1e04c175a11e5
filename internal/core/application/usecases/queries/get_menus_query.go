package queries

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrGetMenusQueryIsNotConstructed = errors.New(
	"GetMenusQuery must be created via NewGetMenusQuery constructor",
)

// GetMenusQuery retrieves every menu together with its line items.
//
// Example:
//
//	query := NewGetMenusQuery()
//	handler := NewGetMenusQueryHandler(db)
//
//	menus, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get menus: %w", err)
//	}
//
//	for _, m := range menus {
//	    fmt.Printf("%s: %d items\n", m.Name, len(m.MenuProducts))
//	}
type GetMenusQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenusQuery creates a query to retrieve all menus.
func NewGetMenusQuery() GetMenusQuery {
	return GetMenusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetMenusQueryIsNotConstructed)
}

// GetMenusQueryMenuProductResponse represents one menu line item row.
type GetMenusQueryMenuProductResponse struct {
	ProductID kernel.UUID
	Quantity  int64
}

// GetMenusQueryResponse represents one menu with its line items.
// Price is the amount in minor currency units.
type GetMenusQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Price        int64
	MenuGroupID  kernel.UUID
	MenuProducts []GetMenusQueryMenuProductResponse
}
