package table

import (
	"errors"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"
	"dinein/internal/pkg/guard"
)

var (
	// ErrOrderTableIsNotConstructed is returned when an OrderTable instance was not
	// created through the NewOrderTable or RestoreOrderTable constructors.
	ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable constructor")

	// ErrTableHasGroup is returned when the empty flag of a grouped table is changed.
	// The table must be ungrouped first.
	ErrTableHasGroup = errors.New("table that belongs to a group cannot change its empty flag")

	// ErrActiveOrderExists is returned when a table or group mutation is blocked by
	// an order that has not reached Completion.
	ErrActiveOrderExists = errors.New("table has an order that is not completed")

	// ErrTableIsEmpty is returned when guests are recorded on an empty table.
	ErrTableIsEmpty = errors.New("number of guests cannot be changed on an empty table")
)

// OrderTable represents a physical table tracked for occupancy and guest count.
// It is an aggregate root whose empty flag and guest count are mutated through
// validated operations; its group reference is mutated only by TableGroup.
//
// Invariants:
//   - Guests can only be recorded while the table is occupied (not empty)
//   - The empty flag cannot change while the table belongs to a group
//   - The empty flag cannot change while the table has an active order
type OrderTable struct {
	id             kernel.UUID
	tableGroupID   *kernel.UUID
	numberOfGuests kernel.NumberOfGuests
	empty          bool

	guard guard.ConstructorGuard
}

// NewOrderTable creates a table with zero guests and no group.
// The initial empty flag is chosen by the caller.
func NewOrderTable(id kernel.UUID, empty bool) (*OrderTable, error) {
	table := &OrderTable{
		empty: empty,
		guard: guard.NewConstructorGuard(),
	}

	if err := table.setID(id); err != nil {
		return nil, err
	}

	guests, err := kernel.NewNumberOfGuests(0)
	if err != nil {
		return nil, err
	}
	table.numberOfGuests = guests

	return table, nil
}

// RestoreOrderTable reconstructs an OrderTable from persistent storage,
// including its group reference and guest count.
func RestoreOrderTable(
	id kernel.UUID,
	tableGroupID *kernel.UUID,
	numberOfGuests kernel.NumberOfGuests,
	empty bool,
) (*OrderTable, error) {
	table := &OrderTable{
		empty: empty,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		table.setID(id),
		table.setTableGroupID(tableGroupID),
		table.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return nil, err
	}

	return table, nil
}

// Validate ensures the OrderTable was created through its constructor.
func (t *OrderTable) Validate() error {
	if t == nil || t.guard.Validate(ErrOrderTableIsNotConstructed) != nil {
		return ErrOrderTableIsNotConstructed
	}

	return nil
}

// IsEqual compares two tables by their unique identifiers.
func (t *OrderTable) IsEqual(other *OrderTable) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the table's unique identifier.
func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

// TableGroupID returns the identifier of the group the table belongs to,
// or nil when the table is ungrouped.
func (t *OrderTable) TableGroupID() *kernel.UUID {
	return t.tableGroupID
}

// NumberOfGuests returns the recorded guest count.
func (t *OrderTable) NumberOfGuests() kernel.NumberOfGuests {
	return t.numberOfGuests
}

// IsEmpty reports whether the table is currently marked empty.
func (t *OrderTable) IsEmpty() bool {
	return t.empty
}

// ChangeEmpty sets the empty flag.
//
// relatedOrders must be all orders currently bound to this table, freshly
// loaded by the caller inside the same transaction. The operation fails with
// ErrTableHasGroup while the table is grouped and with ErrActiveOrderExists
// while any related order has not reached Completion.
func (t *OrderTable) ChangeEmpty(empty bool, relatedOrders []*order.Order) error {
	if t.tableGroupID != nil {
		return ErrTableHasGroup
	}

	if order.AnyActive(relatedOrders) {
		return ErrActiveOrderExists
	}

	t.empty = empty
	return nil
}

// ChangeNumberOfGuests records the guest count for an occupied table.
// Fails with ErrTableIsEmpty while the table is marked empty; negative counts
// are rejected at NumberOfGuests construction.
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests kernel.NumberOfGuests) error {
	if err := numberOfGuests.Validate(); err != nil {
		return err
	}

	if t.empty {
		return ErrTableIsEmpty
	}

	t.numberOfGuests = numberOfGuests
	return nil
}

// assignGroup binds the table to a group. Called only by NewTableGroup after
// every candidate has passed validation.
func (t *OrderTable) assignGroup(groupID kernel.UUID) {
	id := groupID
	t.tableGroupID = &id
}

// releaseGroup clears the table's group reference. Called only by
// TableGroup.Ungroup after every member has passed validation.
func (t *OrderTable) releaseGroup() {
	t.tableGroupID = nil
}

func (t *OrderTable) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *OrderTable) setTableGroupID(tableGroupID *kernel.UUID) error {
	if tableGroupID != nil {
		if err := tableGroupID.Validate(); err != nil {
			return err
		}
		id := *tableGroupID
		t.tableGroupID = &id
	}
	return nil
}

func (t *OrderTable) setNumberOfGuests(numberOfGuests kernel.NumberOfGuests) error {
	if err := numberOfGuests.Validate(); err != nil {
		return err
	}
	t.numberOfGuests = numberOfGuests
	return nil
}
