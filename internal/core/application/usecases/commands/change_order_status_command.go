package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

// ErrChangeOrderStatusCommandIsNotConstructed is returned when a
// ChangeOrderStatusCommand was not created via its constructor.
var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand requests a fulfillment-status transition.
type ChangeOrderStatusCommand struct { //nolint:recvcheck // pointer receivers used for construction only
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates and builds a status-change command.
// Whether the transition is legal from the order's current status is decided
// by the aggregate, not here.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target aggregate identifier.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Target returns the requested fulfillment status.
func (c ChangeOrderStatusCommand) Target() order.Status { return c.target }

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
