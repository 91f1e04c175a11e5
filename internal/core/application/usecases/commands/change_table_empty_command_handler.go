package commands

import (
	"context"
)

// ChangeTableEmptyCommandHandler handles the business logic for toggling a
// table's empty flag. Loading the table locks its row, so placing an order at
// the same table waits behind this transaction and the active-order check
// cannot be split from the write by a concurrent order insert.
type ChangeTableEmptyCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewChangeTableEmptyCommandHandler creates a handler for table empty flag changes.
func NewChangeTableEmptyCommandHandler(uowFactory TableUoWFactory) ChangeTableEmptyCommandHandler {
	return ChangeTableEmptyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the empty flag change command.
// Fails with an object-not-found error when the table does not exist, with
// table.ErrTableHasGroup when the table belongs to a group, and with
// table.ErrActiveOrderExists when any of its orders has not completed.
func (h *ChangeTableEmptyCommandHandler) Handle(ctx context.Context, cmd ChangeTableEmptyCommand) error {
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

	tableRepo := uow.OrderTableRepository()
	orderTable, err := tableRepo.Get(ctx, cmd.OrderTableID())
	if err != nil {
		return err
	}

	relatedOrders, err := uow.OrderRepository().GetAllByOrderTableID(ctx, orderTable.ID())
	if err != nil {
		return err
	}

	if err = orderTable.ChangeEmpty(cmd.Empty(), relatedOrders); err != nil {
		return err
	}

	if err = tableRepo.Update(ctx, orderTable); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
