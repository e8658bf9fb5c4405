package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCancelStaleOrdersCommandIsNotConstructed is returned when a
// CancelStaleOrdersCommand was not created via its constructor.
var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand requests cancellation of orders that sat in
// pending/unpaid longer than maxAge. Run periodically by the background job.
type CancelStaleOrdersCommand struct {
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand validates and builds a stale-cancellation
// command.
func NewCancelStaleOrdersCommand(maxAge time.Duration) (CancelStaleOrdersCommand, error) {
	if maxAge <= 0 {
		return CancelStaleOrdersCommand{}, errs.NewValueIsInvalidError("maxAge")
	}
	return CancelStaleOrdersCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long an order may stay pending and unpaid.
func (c CancelStaleOrdersCommand) MaxAge() time.Duration { return c.maxAge }
