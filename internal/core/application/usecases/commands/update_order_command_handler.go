package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// UpdateOrderCommandHandler applies partial updates to existing orders.
// Replacement lines are re-snapshotted from the catalog so an update can
// never carry stale product identity.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle loads the order, applies the update, and persists it under an
// optimistic concurrency check on the load-time updatedAt. Soft-deleted
// orders are not reachable through this path.
func (h UpdateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var items []*order.Item
	if cmd.ReplacesItems() {
		built, err := snapshotItems(ctx, h.catalog, cmd.Items())
		if err != nil {
			return nil, err
		}
		items = built
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

	if err := aggregate.Update(
		items,
		cmd.Discount(),
		cmd.Tax(),
		cmd.PaymentMethod(),
		cmd.ShippingMethod(),
		cmd.Notes(),
	); err != nil {
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
