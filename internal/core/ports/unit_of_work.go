package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command so
// concurrent operations stay isolated.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Client code manages the
// transaction lifecycle explicitly; repositories obtained from it run inside
// the active transaction.
type UnitOfWork interface {
	// Begin starts a database transaction. Calling Begin twice is safe and
	// does not nest.
	Begin(ctx context.Context) error

	// Commit commits the active transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the active transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the active transaction,
	// or to the base connection when no transaction is open.
	OrderRepository() OrderRepository
}
