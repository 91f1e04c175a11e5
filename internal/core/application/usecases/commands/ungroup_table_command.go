package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrUngroupTableCommandIsNotConstructed = errors.New(
	"UngroupTableCommand must be created via NewUngroupTableCommand constructor",
)

// UngroupTableCommand represents a request to dissolve a table group.
type UngroupTableCommand struct { //nolint:recvcheck //using for validation
	tableGroupID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUngroupTableCommand creates a command to dissolve a table group.
func NewUngroupTableCommand(tableGroupID kernel.UUID) (UngroupTableCommand, error) {
	ungroupCommand := UngroupTableCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := ungroupCommand.setTableGroupID(tableGroupID); err != nil {
		return UngroupTableCommand{}, err
	}

	return ungroupCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UngroupTableCommand) Validate() error {
	return c.guard.Validate(ErrUngroupTableCommandIsNotConstructed)
}

// TableGroupID returns the unique identifier of the group to dissolve.
func (c UngroupTableCommand) TableGroupID() kernel.UUID {
	return c.tableGroupID
}

func (c *UngroupTableCommand) setTableGroupID(tableGroupID kernel.UUID) error {
	if err := tableGroupID.Validate(); err != nil {
		return err
	}

	c.tableGroupID = tableGroupID
	return nil
}
