package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// OrderUoW is the slice of the unit of work the order command handlers need.
type OrderUoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	OrderRepository() ports.OrderRepository
}

// OrderUoWFactory creates a fresh OrderUoW per handled command.
type OrderUoWFactory interface {
	Create() OrderUoW
}
