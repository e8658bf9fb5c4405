package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

// ErrDeleteOrderCommandIsNotConstructed is returned when a DeleteOrderCommand
// was not created via NewDeleteOrderCommand.
var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand requests a soft delete. The order stays in storage with
// all business fields intact and can be restored later.
type DeleteOrderCommand struct { //nolint:recvcheck // pointer receivers used for construction only
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand validates and builds a soft-delete command.
func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the target aggregate identifier.
func (c DeleteOrderCommand) OrderID() kernel.UUID { return c.orderID }
