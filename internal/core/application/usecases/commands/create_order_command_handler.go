package commands

import (
	"context"
	"errors"
	"time"

	"dinein/internal/core/domain/model/order"
)

// ErrOrderLineItemMenuMismatch is returned when an order references menus
// that do not exist. Detected by comparing the count of distinct referenced
// menu ids against the count of menus the lookup actually resolved.
var ErrOrderLineItemMenuMismatch = errors.New("order line items reference menus that do not exist")

// CreateOrderCommandHandler handles the business logic for order placement.
// Loading the target table locks its row, which orders the insert against a
// concurrent empty-flag change or ungroup checking the table's orders.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Fails with an object-not-found error when the table does not exist and with
// ErrOrderLineItemMenuMismatch when any referenced menu is missing. On success
// the order starts in Cooking status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderTable, err := uow.OrderTableRepository().Get(ctx, cmd.OrderTableID())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), orderTable.ID(), cmd.LineItems(), time.Now().UTC())
	if err != nil {
		return err
	}

	menuIDs := newOrder.MenuIDs()
	menus, err := uow.MenuRepository().GetAllByIDs(ctx, menuIDs)
	if err != nil {
		return err
	}
	if len(menus) != len(menuIDs) {
		return ErrOrderLineItemMenuMismatch
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
