// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly and return plain response
// structs; they never load or mutate aggregates.
package queries

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrGetMenuGroupsQueryIsNotConstructed = errors.New(
	"GetMenuGroupsQuery must be created via NewGetMenuGroupsQuery constructor",
)

// GetMenuGroupsQuery retrieves every menu group.
type GetMenuGroupsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuGroupsQuery creates a query to retrieve all menu groups.
func NewGetMenuGroupsQuery() GetMenuGroupsQuery {
	return GetMenuGroupsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuGroupsQueryIsNotConstructed)
}

// GetMenuGroupsQueryResponse represents one menu group row.
type GetMenuGroupsQueryResponse struct {
	ID   kernel.UUID
	Name string
}
