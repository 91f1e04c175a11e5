package table

import (
	"errors"
	"time"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/core/domain/model/order"
	"dinein/internal/pkg/errs"
	"dinein/internal/pkg/guard"
)

// tableGroupMinimumSize is the smallest number of tables that can share a bill.
const tableGroupMinimumSize = 2

var (
	// ErrTableGroupIsNotConstructed is returned when a TableGroup instance was not
	// created through the NewTableGroup or RestoreTableGroup constructors.
	ErrTableGroupIsNotConstructed = errors.New("TableGroup must be created via NewTableGroup constructor")

	// ErrNotEnoughTables is returned when a group is formed with fewer than two tables.
	ErrNotEnoughTables = errors.New("table group requires at least two tables")

	// ErrTableNotEmpty is returned when a non-empty table is offered for grouping.
	ErrTableNotEmpty = errors.New("only empty tables can join a table group")

	// ErrTableAlreadyGrouped is returned when a table that already belongs to a group
	// is offered for grouping. Group membership is exclusive.
	ErrTableAlreadyGrouped = errors.New("table already belongs to a table group")

	// ErrDuplicateTables is returned when the same table appears twice among the candidates.
	ErrDuplicateTables = errs.NewValueIsInvalidError("order tables contain duplicates")
)

// TableGroup is a set of at least two tables combined for shared billing.
// The member set is fixed at creation; the group is dissolved as a whole by
// Ungroup, never partially.
//
// Invariants at formation time:
//   - At least two distinct candidate tables
//   - Every candidate is empty and belongs to no group
//   - Either every candidate gets the group reference or none does
type TableGroup struct {
	id            kernel.UUID
	orderTableIDs []kernel.UUID
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewTableGroup forms a group from the candidate tables.
//
// All candidates are validated before any of them is mutated, so a rejected
// formation leaves every table untouched. On success every candidate's group
// reference points at the new group.
func NewTableGroup(id kernel.UUID, orderTables []*OrderTable, createdAt time.Time) (*TableGroup, error) {
	group := &TableGroup{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		group.setID(id),
		group.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := validateCandidates(orderTables); err != nil {
		return nil, err
	}

	group.orderTableIDs = make([]kernel.UUID, 0, len(orderTables))
	for _, t := range orderTables {
		t.assignGroup(group.id)
		group.orderTableIDs = append(group.orderTableIDs, t.ID())
	}

	return group, nil
}

// RestoreTableGroup reconstructs a TableGroup from persistent storage.
// Member tables are not mutated; their references are already persisted.
func RestoreTableGroup(id kernel.UUID, orderTableIDs []kernel.UUID, createdAt time.Time) (*TableGroup, error) {
	group := &TableGroup{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		group.setID(id),
		group.setCreatedAt(createdAt),
		group.setOrderTableIDs(orderTableIDs),
	); err != nil {
		return nil, err
	}

	return group, nil
}

// Validate ensures the TableGroup was created through its constructor.
func (g *TableGroup) Validate() error {
	if g == nil || g.guard.Validate(ErrTableGroupIsNotConstructed) != nil {
		return ErrTableGroupIsNotConstructed
	}

	return nil
}

// ID returns the group's unique identifier.
func (g *TableGroup) ID() kernel.UUID {
	return g.id
}

// CreatedAt returns the group's creation timestamp.
func (g *TableGroup) CreatedAt() time.Time {
	return g.createdAt
}

// OrderTableIDs returns a copy of the member table identifiers.
func (g *TableGroup) OrderTableIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(g.orderTableIDs))
	copy(ids, g.orderTableIDs)
	return ids
}

// Ungroup dissolves the group, releasing every member table.
//
// orderTables must be the freshly loaded member tables and relatedOrders all
// orders bound to any of them, both resolved by the caller inside the same
// transaction. The active-order check runs across all members before any
// table is mutated, so a rejected ungroup leaves every reference in place.
func (g *TableGroup) Ungroup(orderTables []*OrderTable, relatedOrders []*order.Order) error {
	for _, t := range orderTables {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	if order.AnyActive(relatedOrders) {
		return ErrActiveOrderExists
	}

	for _, t := range orderTables {
		t.releaseGroup()
	}

	return nil
}

// validateCandidates checks every formation rule before any table is mutated.
func validateCandidates(orderTables []*OrderTable) error {
	if len(orderTables) < tableGroupMinimumSize {
		return ErrNotEnoughTables
	}

	seen := make(map[kernel.UUID]struct{}, len(orderTables))
	for _, t := range orderTables {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, ok := seen[t.ID()]; ok {
			return ErrDuplicateTables
		}
		seen[t.ID()] = struct{}{}

		if !t.IsEmpty() {
			return ErrTableNotEmpty
		}
		if t.TableGroupID() != nil {
			return ErrTableAlreadyGrouped
		}
	}

	return nil
}

func (g *TableGroup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *TableGroup) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	g.createdAt = createdAt
	return nil
}

func (g *TableGroup) setOrderTableIDs(orderTableIDs []kernel.UUID) error {
	if len(orderTableIDs) < tableGroupMinimumSize {
		return ErrNotEnoughTables
	}

	for _, id := range orderTableIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	g.orderTableIDs = make([]kernel.UUID, len(orderTableIDs))
	copy(g.orderTableIDs, orderTableIDs)
	return nil
}
