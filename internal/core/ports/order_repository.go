package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Soft-deleted orders are excluded from reads unless includeDeleted is set;
// the filter is applied centrally in the implementation so no query path can
// forget it.
type OrderRepository interface {
	// Add persists a new aggregate together with its items, atomically.
	// A duplicate order number fails with ConflictError: uniqueness is a
	// storage constraint, never a check-then-insert.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing aggregate, replacing its item
	// set in the same transaction. The write is conditioned on
	// expectedUpdatedAt: a mismatch on a still-existing row fails with
	// ConflictError (stale write), a missing row with ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order, expectedUpdatedAt time.Time) error

	// GetByID retrieves an aggregate. With includeDeleted false, a
	// soft-deleted order is reported as ObjectNotFoundError.
	GetByID(ctx context.Context, id kernel.UUID, includeDeleted bool) (*order.Order, error)

	// SoftDelete marks the order deleted. Deleting an already-deleted order
	// is a no-op; a missing order fails with ObjectNotFoundError.
	SoftDelete(ctx context.Context, id kernel.UUID) error

	// Restore clears the soft-delete marker. Restoring a live order is a
	// no-op; a missing order fails with ObjectNotFoundError.
	Restore(ctx context.Context, id kernel.UUID) error

	// GetStalePendingUnpaid retrieves live orders still pending and unpaid
	// that were created before the cutoff. Used by the stale-order
	// cancellation job.
	GetStalePendingUnpaid(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
