package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// CustomerInfo carries the directory record used to prefill an order's
// customer snapshot. The order keeps only a weak reference to the customer;
// the snapshot is decoupled from later directory edits.
type CustomerInfo struct {
	ID      kernel.UUID
	Name    string
	Phone   string
	Email   string
	Address string
}

// CustomerDirectory is the optional external collaborator for registered
// customers. The order core tolerates its absence: guest orders carry a
// snapshot only.
type CustomerDirectory interface {
	// GetByID returns the customer or ObjectNotFoundError.
	GetByID(ctx context.Context, id kernel.UUID) (CustomerInfo, error)
}
