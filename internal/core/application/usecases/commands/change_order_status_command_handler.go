package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler moves an order along the fulfillment state
// machine under an optimistic concurrency check.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle loads the order, applies the transition, and persists it. Illegal
// transitions surface as InvalidTransitionError without touching storage.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
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

	if err := aggregate.ChangeStatus(cmd.Target()); err != nil {
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
