// Package tablerepo provides data transfer objects and mapping functions for
// table and table group persistence. Group membership lives on the table rows
// (table_group_id), so the group table itself holds only identity and timestamp.
package tablerepo

import (
	"time"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// OrderTableDTO represents the database structure for persisting table aggregates.
type OrderTableDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TableGroupID   *uuid.UUID `gorm:"type:uuid;index"`
	NumberOfGuests int        `gorm:"type:int;not null"`
	Empty          bool       `gorm:"not null"`
}

// TableName specifies the database table name for table entities.
// Overrides GORM's default naming convention to use "order_tables".
func (OrderTableDTO) TableName() string {
	return "order_tables"
}

// TableGroupDTO represents the database structure for persisting table groups.
// The row exists only while the group is formed; ungrouping deletes it.
type TableGroupDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for table group entities.
func (TableGroupDTO) TableName() string {
	return "table_groups"
}

// fromDomain converts a table domain aggregate to its database representation.
func fromDomain(aggregate *table.OrderTable) OrderTableDTO {
	var tableGroupID *uuid.UUID
	if id := aggregate.TableGroupID(); id != nil {
		raw := id.Bytes()
		tableGroupID = &raw
	}

	return OrderTableDTO{
		ID:             aggregate.ID().Bytes(),
		TableGroupID:   tableGroupID,
		NumberOfGuests: aggregate.NumberOfGuests().Value(),
		Empty:          aggregate.IsEmpty(),
	}
}

// toDomain converts a database DTO to a table domain aggregate using RestoreOrderTable.
func toDomain(dto OrderTableDTO) (*table.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tableGroupID *kernel.UUID
	if dto.TableGroupID != nil {
		gID, groupErr := kernel.UUIDFromBytes((*dto.TableGroupID)[:])
		if groupErr != nil {
			return nil, groupErr
		}
		tableGroupID = &gID
	}

	numberOfGuests, err := kernel.NewNumberOfGuests(dto.NumberOfGuests)
	if err != nil {
		return nil, err
	}

	return table.RestoreOrderTable(id, tableGroupID, numberOfGuests, dto.Empty)
}

// groupFromDomain converts a table group aggregate to its database representation.
func groupFromDomain(aggregate *table.TableGroup) TableGroupDTO {
	return TableGroupDTO{
		ID:        aggregate.ID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// groupToDomain converts a group row and its member table ids to a table group
// aggregate using RestoreTableGroup. Membership is read from order_tables.
func groupToDomain(dto TableGroupDTO, memberIDs []uuid.UUID) (*table.TableGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderTableIDs := make([]kernel.UUID, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		tableID, memberErr := kernel.UUIDFromBytes(memberID[:])
		if memberErr != nil {
			return nil, memberErr
		}
		orderTableIDs = append(orderTableIDs, tableID)
	}

	return table.RestoreTableGroup(id, orderTableIDs, dto.CreatedAt)
}
