package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// orderNumberAttempts bounds retries when a generated order number collides
// with the unique index.
const orderNumberAttempts = 3

// CreateOrderCommandHandler creates new orders: snapshots product and
// customer data, computes totals, and persists the aggregate atomically.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	customers  ports.CustomerDirectory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// customers may be nil when no directory is wired; orders then always carry
// request-supplied snapshots.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	customers ports.CustomerDirectory,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		customers:  customers,
	}
}

// Handle processes an order-creation command and returns the persisted
// aggregate with its server-assigned number and computed totals. Either the
// whole order and its items are committed or nothing is. An order number
// collision is retried with a fresh number; persistent collisions surface as
// ConflictError.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := h.buildSnapshot(ctx, cmd)
	if err != nil {
		return nil, err
	}

	items, err := snapshotItems(ctx, h.catalog, cmd.Items())
	if err != nil {
		return nil, err
	}

	var lastErr error
	for range orderNumberAttempts {
		number := order.GenerateNumber(time.Now())

		aggregate, buildErr := order.NewOrder(
			cmd.OrderID(),
			number,
			cmd.CustomerID(),
			cmd.UserID(),
			snapshot,
			cmd.OrderDate(),
			items,
			cmd.Discount(),
			cmd.Tax(),
			cmd.PaymentMethod(),
			cmd.ShippingMethod(),
			cmd.Notes(),
		)
		if buildErr != nil {
			return nil, buildErr
		}

		persisted, persistErr := h.persist(ctx, aggregate)
		if persistErr == nil {
			return persisted, nil
		}
		if !errors.Is(persistErr, errs.ErrConflict) {
			return nil, persistErr
		}
		lastErr = persistErr
	}

	return nil, lastErr
}

func (h CreateOrderCommandHandler) persist(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Reload outside the transaction to pick up storage-assigned timestamps.
	return uow.OrderRepository().GetByID(ctx, aggregate.ID(), false)
}

// buildSnapshot resolves the customer snapshot: request fields win, the
// directory fills in what is missing, and a dead directory reference falls
// back to the request fields (guest order semantics).
func (h CreateOrderCommandHandler) buildSnapshot(
	ctx context.Context,
	cmd CreateOrderCommand,
) (order.CustomerSnapshot, error) {
	name := cmd.CustomerName()
	phone := cmd.CustomerPhone()
	email := cmd.CustomerEmail()
	address := cmd.CustomerAddress()

	if cmd.CustomerID() != nil && h.customers != nil && (name == "" || phone == "") {
		info, err := h.customers.GetByID(ctx, *cmd.CustomerID())
		if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
			return order.CustomerSnapshot{}, err
		}
		if err == nil {
			if name == "" {
				name = info.Name
			}
			if phone == "" {
				phone = info.Phone
			}
			if email == "" {
				email = info.Email
			}
			if address == "" {
				address = info.Address
			}
		}
	}

	return order.NewCustomerSnapshot(name, phone, email, address)
}
