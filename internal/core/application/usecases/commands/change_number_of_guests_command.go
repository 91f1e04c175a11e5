package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrChangeNumberOfGuestsCommandIsNotConstructed = errors.New(
	"ChangeNumberOfGuestsCommand must be created via NewChangeNumberOfGuestsCommand constructor",
)

// ChangeNumberOfGuestsCommand represents a request to record the guest count
// at an occupied table.
type ChangeNumberOfGuestsCommand struct { //nolint:recvcheck //using for validation
	orderTableID   kernel.UUID
	numberOfGuests kernel.NumberOfGuests

	guard guard.ConstructorGuard
}

// NewChangeNumberOfGuestsCommand creates a command to record a guest count.
// Validates that the table ID is valid and the count is not negative.
func NewChangeNumberOfGuestsCommand(orderTableID kernel.UUID, numberOfGuests int) (ChangeNumberOfGuestsCommand, error) {
	guestsCommand := ChangeNumberOfGuestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		guestsCommand.setOrderTableID(orderTableID),
		guestsCommand.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return ChangeNumberOfGuestsCommand{}, err
	}

	return guestsCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeNumberOfGuestsCommand) Validate() error {
	return c.guard.Validate(ErrChangeNumberOfGuestsCommandIsNotConstructed)
}

// OrderTableID returns the unique identifier of the table.
func (c ChangeNumberOfGuestsCommand) OrderTableID() kernel.UUID {
	return c.orderTableID
}

// NumberOfGuests returns the guest count to record.
func (c ChangeNumberOfGuestsCommand) NumberOfGuests() kernel.NumberOfGuests {
	return c.numberOfGuests
}

func (c *ChangeNumberOfGuestsCommand) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}

	c.orderTableID = orderTableID
	return nil
}

func (c *ChangeNumberOfGuestsCommand) setNumberOfGuests(numberOfGuests int) error {
	value, err := kernel.NewNumberOfGuests(numberOfGuests)
	if err != nil {
		return err
	}

	c.numberOfGuests = value
	return nil
}
