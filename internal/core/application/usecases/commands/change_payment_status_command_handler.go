package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// ChangePaymentStatusCommandHandler applies explicit payment-status changes.
type ChangePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangePaymentStatusCommandHandler creates a handler for payment-status
// changes.
func NewChangePaymentStatusCommandHandler(uowFactory OrderUoWFactory) ChangePaymentStatusCommandHandler {
	return ChangePaymentStatusCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, sets the payment status, and persists it under an
// optimistic concurrency check. Backward moves (refunds) are allowed.
func (h ChangePaymentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangePaymentStatusCommand,
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

	aggregate, err := uow.OrderRepository().GetByID(ctx, cmd.OrderID(), false)
	if err != nil {
		return nil, err
	}
	expected := aggregate.UpdatedAt()

	if err := aggregate.ChangePaymentStatus(cmd.Target()); err != nil {
		return nil, err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate, expected); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return uow.OrderRepository().GetByID(ctx, cmd.OrderID(), false)
}
