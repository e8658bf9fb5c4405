package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// ProductInfo is what the order core needs to know about a product at the
// moment an order line is created: identity to reference and name/code/price
// to snapshot. The catalog is consulted exactly once per line; the core
// never re-reads a live price after snapshotting.
type ProductInfo struct {
	ID       kernel.UUID
	Name     string
	Code     string
	Price    kernel.Money
	Quantity int
}

// ProductCatalog is the external collaborator holding the live product
// records.
type ProductCatalog interface {
	// GetByID returns the product or ObjectNotFoundError.
	GetByID(ctx context.Context, id kernel.UUID) (ProductInfo, error)
}
