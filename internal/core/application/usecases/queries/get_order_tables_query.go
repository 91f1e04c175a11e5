package queries

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrGetOrderTablesQueryIsNotConstructed = errors.New(
	"GetOrderTablesQuery must be created via NewGetOrderTablesQuery constructor",
)

// GetOrderTablesQuery retrieves every table with its occupancy state.
type GetOrderTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderTablesQuery creates a query to retrieve all tables.
func NewGetOrderTablesQuery() GetOrderTablesQuery {
	return GetOrderTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTablesQueryIsNotConstructed)
}

// GetOrderTablesQueryResponse represents one table row.
// TableGroupID is nil while the table belongs to no group.
type GetOrderTablesQueryResponse struct {
	ID             kernel.UUID
	TableGroupID   *kernel.UUID
	NumberOfGuests int
	Empty          bool
}
