package queries

import (
	"context"

	"dinein/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTablesQueryHandler retrieves tables from the database.
type GetOrderTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTablesQueryHandler creates a handler for table queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTablesQueryHandler(db *gorm.DB) GetOrderTablesQueryHandler {
	return GetOrderTablesQueryHandler{db: db}
}

// Handle executes the query to retrieve all tables sorted by id.
func (h GetOrderTablesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTablesQuery,
) ([]GetOrderTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetOrderTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_group_id,
			number_of_guests,
			empty
		FROM order_tables
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var tableGroupID *uuid.UUID
		var numberOfGuests int
		var empty bool

		if err = rows.Scan(&id, &tableGroupID, &numberOfGuests, &empty); err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetOrderTablesQueryResponse{
			ID:             tableID,
			NumberOfGuests: numberOfGuests,
			Empty:          empty,
		}

		if tableGroupID != nil {
			groupID, idErr := kernel.UUIDFromBytes(tableGroupID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.TableGroupID = &groupID
		}

		tables = append(tables, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
