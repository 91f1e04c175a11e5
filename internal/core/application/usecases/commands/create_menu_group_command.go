package commands

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

var ErrCreateMenuGroupCommandIsNotConstructed = errors.New(
	"CreateMenuGroupCommand must be created via NewCreateMenuGroupCommand constructor",
)

// CreateMenuGroupCommand represents a request to register a new menu group.
type CreateMenuGroupCommand struct { //nolint:recvcheck //using for validation
	menuGroupID kernel.UUID
	name        kernel.Name

	guard guard.ConstructorGuard
}

// NewCreateMenuGroupCommand creates a command to register a new menu group.
// Validates that the group ID is valid and the name is not blank.
func NewCreateMenuGroupCommand(menuGroupID kernel.UUID, name string) (CreateMenuGroupCommand, error) {
	groupCommand := CreateMenuGroupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		groupCommand.setMenuGroupID(menuGroupID),
		groupCommand.setName(name),
	); err != nil {
		return CreateMenuGroupCommand{}, err
	}

	return groupCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuGroupCommandIsNotConstructed)
}

// MenuGroupID returns the unique identifier for the menu group.
func (c CreateMenuGroupCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

// Name returns the menu group name.
func (c CreateMenuGroupCommand) Name() kernel.Name {
	return c.name
}

func (c *CreateMenuGroupCommand) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}

	c.menuGroupID = menuGroupID
	return nil
}

func (c *CreateMenuGroupCommand) setName(name string) error {
	value, err := kernel.NewName(name)
	if err != nil {
		return err
	}

	c.name = value
	return nil
}
