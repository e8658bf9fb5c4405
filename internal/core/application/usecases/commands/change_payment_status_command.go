package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

// ErrChangePaymentStatusCommandIsNotConstructed is returned when a
// ChangePaymentStatusCommand was not created via its constructor.
var ErrChangePaymentStatusCommandIsNotConstructed = errors.New(
	"ChangePaymentStatusCommand must be created via NewChangePaymentStatusCommand constructor",
)

// ChangePaymentStatusCommand requests an explicit payment-status change.
// Payment status never moves as a side effect of anything else.
type ChangePaymentStatusCommand struct { //nolint:recvcheck // pointer receivers used for construction only
	orderID kernel.UUID
	target  order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewChangePaymentStatusCommand validates and builds a payment-status command.
func NewChangePaymentStatusCommand(
	orderID kernel.UUID,
	target order.PaymentStatus,
) (ChangePaymentStatusCommand, error) {
	cmd := ChangePaymentStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangePaymentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentStatusCommandIsNotConstructed)
}

// OrderID returns the target aggregate identifier.
func (c ChangePaymentStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Target returns the requested payment status.
func (c ChangePaymentStatusCommand) Target() order.PaymentStatus { return c.target }

func (c *ChangePaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangePaymentStatusCommand) setTarget(target order.PaymentStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
