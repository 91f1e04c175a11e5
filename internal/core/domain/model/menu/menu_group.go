package menu

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/guard"
)

// ErrMenuGroupIsNotConstructed is returned when a MenuGroup instance was not
// created through the NewMenuGroup constructor.
var ErrMenuGroupIsNotConstructed = errors.New("MenuGroup must be created via NewMenuGroup constructor")

// MenuGroup is a named category under which menus are offered, such as
// "recommended" or "set menus". Created once and never mutated.
type MenuGroup struct {
	id   kernel.UUID
	name kernel.Name

	guard guard.ConstructorGuard
}

// NewMenuGroup creates a MenuGroup with a validated name.
func NewMenuGroup(id kernel.UUID, name kernel.Name) (*MenuGroup, error) {
	group := &MenuGroup{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		group.setID(id),
		group.setName(name),
	); err != nil {
		return nil, err
	}

	return group, nil
}

// RestoreMenuGroup reconstructs a MenuGroup from persistent storage.
func RestoreMenuGroup(id kernel.UUID, name kernel.Name) (*MenuGroup, error) {
	return NewMenuGroup(id, name)
}

// Validate ensures the MenuGroup was created through its constructor.
func (g *MenuGroup) Validate() error {
	if g == nil || g.guard.Validate(ErrMenuGroupIsNotConstructed) != nil {
		return ErrMenuGroupIsNotConstructed
	}

	return nil
}

// IsEqual compares two menu groups by their unique identifiers.
func (g *MenuGroup) IsEqual(other *MenuGroup) bool {
	return other != nil && g.id.IsEqual(other.id)
}

// ID returns the menu group's unique identifier.
func (g *MenuGroup) ID() kernel.UUID {
	return g.id
}

// Name returns the menu group's display name.
func (g *MenuGroup) Name() kernel.Name {
	return g.name
}

func (g *MenuGroup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *MenuGroup) setName(name kernel.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}
	g.name = name
	return nil
}
