package queries

import (
	"context"

	"dinein/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuGroupsQueryHandler retrieves menu groups from the database.
type GetMenuGroupsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuGroupsQueryHandler creates a handler for menu group queries.
// Requires a GORM database connection for query execution.
func NewGetMenuGroupsQueryHandler(db *gorm.DB) GetMenuGroupsQueryHandler {
	return GetMenuGroupsQueryHandler{db: db}
}

// Handle executes the query to retrieve all menu groups sorted by id.
func (h GetMenuGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuGroupsQuery,
) ([]GetMenuGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	groups := make([]GetMenuGroupsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name
		FROM menu_groups
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string

		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}

		groupID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		groups = append(groups, GetMenuGroupsQueryResponse{ID: groupID, Name: name})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
