package order

import (
	"errors"
	"time"

	"dinein/internal/core/domain/model/kernel"
	"dinein/internal/pkg/errs"
	"dinein/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderLineItemsAreEmpty is returned when an order is created without line items.
	ErrOrderLineItemsAreEmpty = errs.NewValueIsRequiredError("order line items")
)

// Order represents a request placed at a table for one or more menus.
// It is the aggregate root owning its line items and progressing through the
// Cooking -> Meal -> Completion lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and order table reference
//   - Must own at least one line item; line items are immutable
//   - Status transitions follow the state machine rules (see Status)
//   - Carries its creation timestamp
type Order struct {
	id           kernel.UUID
	orderTableID kernel.UUID
	status       Status
	lineItems    []LineItem
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an Order bound to a table, in Cooking status, owning the
// given line items and stamped with the given creation time.
func NewOrder(id kernel.UUID, orderTableID kernel.UUID, lineItems []LineItem, createdAt time.Time) (*Order, error) {
	order := &Order{
		status: Cooking,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderTableID(orderTableID),
		order.setLineItems(lineItems),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// persisted status and creation time.
func RestoreOrder(
	id kernel.UUID,
	orderTableID kernel.UUID,
	status Status,
	lineItems []LineItem,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderTableID(orderTableID),
		order.setStatus(status),
		order.setLineItems(lineItems),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was created through its constructor.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderTableID returns the identifier of the table the order was placed at.
func (o *Order) OrderTableID() kernel.UUID {
	return o.orderTableID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// MenuIDs returns the distinct menu identifiers referenced by the order's line items.
func (o *Order) MenuIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(o.lineItems))
	ids := make([]kernel.UUID, 0, len(o.lineItems))
	for _, li := range o.lineItems {
		if _, ok := seen[li.MenuID()]; ok {
			continue
		}
		seen[li.MenuID()] = struct{}{}
		ids = append(ids, li.MenuID())
	}
	return ids
}

// IsActive reports whether the order still blocks table and group mutations.
// An order is active until it reaches Completion.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// ChangeStatus moves the order to the target status.
// Fails with ErrOrderAlreadyCompleted when the order has reached Completion;
// no transition out of the terminal state is permitted, including no-ops.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AnyActive reports whether any order in the slice is still active.
// This is the query table and group operations use to decide whether a table
// has unfinished business.
func AnyActive(orders []*Order) bool {
	for _, o := range orders {
		if o.IsActive() {
			return true
		}
	}
	return false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderTableID(orderTableID kernel.UUID) error {
	if err := orderTableID.Validate(); err != nil {
		return err
	}
	o.orderTableID = orderTableID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return ErrOrderLineItemsAreEmpty
	}

	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = make([]LineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
