package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

// ErrRestoreOrderCommandIsNotConstructed is returned when a
// RestoreOrderCommand was not created via NewRestoreOrderCommand.
var ErrRestoreOrderCommandIsNotConstructed = errors.New(
	"RestoreOrderCommand must be created via NewRestoreOrderCommand constructor",
)

// RestoreOrderCommand requests that a soft-deleted order be brought back.
type RestoreOrderCommand struct { //nolint:recvcheck // pointer receivers used for construction only
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestoreOrderCommand validates and builds a restore command.
func NewRestoreOrderCommand(orderID kernel.UUID) (RestoreOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RestoreOrderCommand{}, err
	}
	return RestoreOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreOrderCommandIsNotConstructed)
}

// OrderID returns the target aggregate identifier.
func (c RestoreOrderCommand) OrderID() kernel.UUID { return c.orderID }
