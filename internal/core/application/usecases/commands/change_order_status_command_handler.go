package commands

import (
	"context"
	"log/slog"

	"dinein/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles the business logic for advancing an
// order through its lifecycle. After the change is committed it announces the
// new status through the event publisher.
type ChangeOrderStatusCommandHandler struct {
	uowFactory     OrderUoWFactory
	eventPublisher ports.OrderEventPublisher
	logger         *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
// Requires an OrderUoWFactory for transactional persistence and a publisher
// for post-commit notifications.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	eventPublisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Handle processes the status change command.
// Fails with an object-not-found error when the order does not exist and with
// order.ErrOrderAlreadyCompleted when the order has reached its terminal
// status. The event publish runs after the commit; a publish failure is
// logged, not returned, because the status change already stands.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.eventPublisher.PublishStatusChanged(ctx, aggregate); err != nil {
		h.logger.ErrorContext(ctx, "Order status event publish failed",
			"order_id", aggregate.ID().String(),
			"status", aggregate.Status().String(),
			"error", err,
		)
	}

	return nil
}
