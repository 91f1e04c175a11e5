package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/table"
	"dinein/internal/pkg/guard"
)

var ErrCreateTableGroupCommandIsNotConstructed = errors.New(
	"CreateTableGroupCommand must be created via NewCreateTableGroupCommand constructor",
)

// CreateTableGroupCommand represents a request to combine tables for shared billing.
//
// Example:
//
//	cmd, err := NewCreateTableGroupCommand(kernel.NewUUID(), []kernel.UUID{t1, t2})
//	if err != nil {
//	    return fmt.Errorf("invalid group data: %w", err)
//	}
//
//	handler := NewCreateTableGroupCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create table group: %w", err)
//	}
type CreateTableGroupCommand struct { //nolint:recvcheck //using for validation
	tableGroupID  kernel.UUID
	orderTableIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateTableGroupCommand creates a command to form a table group.
// Validates the group ID and every table ID; fails with
// table.ErrNotEnoughTables when fewer than two tables are given.
func NewCreateTableGroupCommand(tableGroupID kernel.UUID, orderTableIDs []kernel.UUID) (CreateTableGroupCommand, error) {
	groupCommand := CreateTableGroupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		groupCommand.setTableGroupID(tableGroupID),
		groupCommand.setOrderTableIDs(orderTableIDs),
	); err != nil {
		return CreateTableGroupCommand{}, err
	}

	return groupCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTableGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableGroupCommandIsNotConstructed)
}

// TableGroupID returns the unique identifier for the group.
func (c CreateTableGroupCommand) TableGroupID() kernel.UUID {
	return c.tableGroupID
}

// OrderTableIDs returns the identifiers of the candidate tables.
func (c CreateTableGroupCommand) OrderTableIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderTableIDs))
	copy(ids, c.orderTableIDs)
	return ids
}

func (c *CreateTableGroupCommand) setTableGroupID(tableGroupID kernel.UUID) error {
	if err := tableGroupID.Validate(); err != nil {
		return err
	}

	c.tableGroupID = tableGroupID
	return nil
}

func (c *CreateTableGroupCommand) setOrderTableIDs(orderTableIDs []kernel.UUID) error {
	if len(orderTableIDs) < 2 {
		return table.ErrNotEnoughTables
	}

	for _, id := range orderTableIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderTableIDs = make([]kernel.UUID, len(orderTableIDs))
	copy(c.orderTableIDs, orderTableIDs)
	return nil
}
