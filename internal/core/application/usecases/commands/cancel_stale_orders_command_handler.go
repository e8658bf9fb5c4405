package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// CancelStaleOrdersCommandHandler cancels orders abandoned at checkout:
// still pending, still unpaid, created before the cutoff.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order
// sweep.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle cancels every stale order in its own transaction and returns how
// many were cancelled. An order that was concurrently modified or paid is
// skipped, not failed: the next sweep re-evaluates it.
func (h CancelStaleOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelStaleOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())

	uow := h.uowFactory.Create()
	stale, err := uow.OrderRepository().GetStalePendingUnpaid(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, aggregate := range stale {
		if err := h.cancel(ctx, aggregate); err != nil {
			if errors.Is(err, errs.ErrConflict) || errors.Is(err, errs.ErrInvalidTransition) {
				continue
			}
			return cancelled, err
		}
		cancelled++
	}

	return cancelled, nil
}

func (h CancelStaleOrdersCommandHandler) cancel(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	expected := aggregate.UpdatedAt()
	if err := aggregate.ChangeStatus(order.StatusCancelled); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate, expected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
