package commands

import (
	"context"
)

// UngroupTableCommandHandler handles the business logic for dissolving a
// table group. The group row is removed and every member table released in
// one transaction, so dissolving a group twice fails with not-found.
type UngroupTableCommandHandler struct {
	uowFactory TableGroupUoWFactory
}

// NewUngroupTableCommandHandler creates a handler for group dissolution.
func NewUngroupTableCommandHandler(uowFactory TableGroupUoWFactory) UngroupTableCommandHandler {
	return UngroupTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the group dissolution command.
// Fails with an object-not-found error when the group does not exist and with
// table.ErrActiveOrderExists when any member table still has an uncompleted
// order. A rejected dissolution releases no table.
func (h *UngroupTableCommandHandler) Handle(ctx context.Context, cmd UngroupTableCommand) error {
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

	groupRepo := uow.TableGroupRepository()
	group, err := groupRepo.Get(ctx, cmd.TableGroupID())
	if err != nil {
		return err
	}

	tableRepo := uow.OrderTableRepository()
	orderTables, err := tableRepo.GetAllByIDs(ctx, group.OrderTableIDs())
	if err != nil {
		return err
	}

	relatedOrders, err := uow.OrderRepository().GetAllByOrderTableIDs(ctx, group.OrderTableIDs())
	if err != nil {
		return err
	}

	if err = group.Ungroup(orderTables, relatedOrders); err != nil {
		return err
	}

	for _, orderTable := range orderTables {
		if err = tableRepo.Update(ctx, orderTable); err != nil {
			return err
		}
	}

	if err = groupRepo.Remove(ctx, group.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
