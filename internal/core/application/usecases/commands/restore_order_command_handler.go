package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// RestoreOrderCommandHandler brings soft-deleted orders back.
type RestoreOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRestoreOrderCommandHandler creates a handler for restores.
func NewRestoreOrderCommandHandler(uowFactory OrderUoWFactory) RestoreOrderCommandHandler {
	return RestoreOrderCommandHandler{uowFactory: uowFactory}
}

// Handle clears the soft-delete marker and returns the live order. Restoring
// an order that was never deleted succeeds without effect; a missing order
// fails with ObjectNotFoundError.
func (h RestoreOrderCommandHandler) Handle(
	ctx context.Context,
	cmd RestoreOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Restore(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return uow.OrderRepository().GetByID(ctx, cmd.OrderID(), false)
}
