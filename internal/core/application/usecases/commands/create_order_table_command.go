package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrCreateOrderTableCommandIsNotConstructed = errors.New(
	"CreateOrderTableCommand must be created via NewCreateOrderTableCommand constructor",
)

// CreateOrderTableCommand represents a request to register a new table.
// The caller chooses the initial empty flag; a new table always starts with
// zero guests and no group.
type CreateOrderTableCommand struct { //nolint:recvcheck //using for validation
	orderTableID kernel.UUID
	empty        bool

	guard guard.ConstructorGuard
}

// NewCreateOrderTableCommand creates a command to register a new table.
func NewCreateOrderTableCommand(orderTableID kernel.UUID, empty bool) (CreateOrderTableCommand, error) {
	tableCommand := CreateOrderTableCommand{
		empty: empty,
		guard: guard.NewConstructorGuard(),
	}

	if err := tableCommand.setOrderTableID(orderTableID); err != nil {
		return CreateOrderTableCommand{}, err
	}

	return tableCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderTableCommandIsNotConstructed)
}

// OrderTableID returns the unique identifier for the table.
func (c CreateOrderTableCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// Empty returns the requested initial empty flag.
func (c CreateOrderTableCommand) Empty() bool {
	return c.empty
}

func (c *CreateOrderTableCommand) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}

	c.orderTableID = orderTableID
	return nil
}
