package commands

import (
	"context"
	"time"

	"dinein/internal/core/domain/model/table"
	"dinein/internal/pkg/errs"
)

// CreateTableGroupCommandHandler handles the business logic for group formation.
// The group row and every member table row are written in one transaction so
// formation is all-or-nothing.
type CreateTableGroupCommandHandler struct {
	uowFactory TableGroupUoWFactory
}

// NewCreateTableGroupCommandHandler creates a handler for group formation.
// Requires a TableGroupUoWFactory for transactional persistence.
func NewCreateTableGroupCommandHandler(uowFactory TableGroupUoWFactory) CreateTableGroupCommandHandler {
	return CreateTableGroupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the group formation command.
// Fails with an object-not-found error when any candidate table does not
// exist, with table.ErrTableNotEmpty when a candidate is occupied, and with
// table.ErrTableAlreadyGrouped when a candidate already belongs to a group.
// A rejected formation mutates no table.
func (h *CreateTableGroupCommandHandler) Handle(ctx context.Context, cmd CreateTableGroupCommand) error {
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
	candidateIDs := cmd.OrderTableIDs()
	orderTables, err := tableRepo.GetAllByIDs(ctx, candidateIDs)
	if err != nil {
		return err
	}
	if len(orderTables) != len(candidateIDs) {
		return errs.NewObjectNotFoundError("orderTableIDs", candidateIDs)
	}

	group, err := table.NewTableGroup(cmd.TableGroupID(), orderTables, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.TableGroupRepository().Add(ctx, group); err != nil {
		return err
	}

	for _, orderTable := range orderTables {
		if err = tableRepo.Update(ctx, orderTable); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
