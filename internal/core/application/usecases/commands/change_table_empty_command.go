package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrChangeTableEmptyCommandIsNotConstructed = errors.New(
	"ChangeTableEmptyCommand must be created via NewChangeTableEmptyCommand constructor",
)

// ChangeTableEmptyCommand represents a request to flip a table's empty flag.
type ChangeTableEmptyCommand struct { //nolint:recvcheck //using for validation
	orderTableID kernel.UUID
	empty        bool

	guard guard.ConstructorGuard
}

// NewChangeTableEmptyCommand creates a command to set a table's empty flag.
func NewChangeTableEmptyCommand(orderTableID kernel.UUID, empty bool) (ChangeTableEmptyCommand, error) {
	emptyCommand := ChangeTableEmptyCommand{
		empty: empty,
		guard: guard.NewConstructorGuard(),
	}

	if err := emptyCommand.setOrderTableID(orderTableID); err != nil {
		return ChangeTableEmptyCommand{}, err
	}

	return emptyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeTableEmptyCommand) Validate() error {
	return c.guard.Validate(ErrChangeTableEmptyCommandIsNotConstructed)
}

// OrderTableID returns the unique identifier of the table.
func (c ChangeTableEmptyCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// Empty returns the requested empty flag.
func (c ChangeTableEmptyCommand) Empty() bool {
	return c.empty
}

func (c *ChangeTableEmptyCommand) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}

	c.orderTableID = orderTableID
	return nil
}
