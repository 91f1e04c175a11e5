package commands

import (
	"context"
)

// ChangeNumberOfGuestsCommandHandler handles the business logic for recording
// a guest count at a table.
type ChangeNumberOfGuestsCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewChangeNumberOfGuestsCommandHandler creates a handler for guest count changes.
func NewChangeNumberOfGuestsCommandHandler(uowFactory TableUoWFactory) ChangeNumberOfGuestsCommandHandler {
	return ChangeNumberOfGuestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the guest count change command.
// Fails with an object-not-found error when the table does not exist and with
// table.ErrTableIsEmpty when the table is not occupied.
func (h *ChangeNumberOfGuestsCommandHandler) Handle(ctx context.Context, cmd ChangeNumberOfGuestsCommand) error {
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

	if err = orderTable.ChangeNumberOfGuests(cmd.NumberOfGuests()); err != nil {
		return err
	}

	if err = tableRepo.Update(ctx, orderTable); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
