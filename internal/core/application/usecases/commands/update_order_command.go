package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when an UpdateOrderCommand
// was not created via NewUpdateOrderCommand.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand carries a partial order update. Nil fields keep current
// values; a non-nil items slice replaces the whole line set atomically.
// Order number, creation timestamp, and the soft-delete marker cannot be
// changed through this path.
type UpdateOrderCommand struct { //nolint:recvcheck // pointer receivers used for construction only
	orderID        kernel.UUID
	items          []ItemInput
	replaceItems   bool
	discount       *kernel.Money
	tax            *kernel.Money
	paymentMethod  *string
	shippingMethod *string
	notes          *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates and builds an order-update command.
// items == nil means "keep the current lines"; an empty non-nil slice is
// rejected because an order can never end up without lines.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	items []ItemInput,
	discount *kernel.Money,
	tax *kernel.Money,
	paymentMethod *string,
	shippingMethod *string,
	notes *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		discount:       discount,
		tax:            tax,
		paymentMethod:  paymentMethod,
		shippingMethod: shippingMethod,
		notes:          notes,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
		cmd.validateAmounts(),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the target aggregate identifier.
func (c UpdateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ReplacesItems reports whether the command carries a replacement line set.
func (c UpdateOrderCommand) ReplacesItems() bool { return c.replaceItems }

// Items returns the replacement lines, meaningful only when ReplacesItems.
func (c UpdateOrderCommand) Items() []ItemInput { return c.items }

// Discount returns the new order-level discount, nil to keep current.
func (c UpdateOrderCommand) Discount() *kernel.Money { return c.discount }

// Tax returns the new order-level tax, nil to keep current.
func (c UpdateOrderCommand) Tax() *kernel.Money { return c.tax }

// PaymentMethod returns the new payment method, nil to keep current.
func (c UpdateOrderCommand) PaymentMethod() *string { return c.paymentMethod }

// ShippingMethod returns the new shipping method, nil to keep current.
func (c UpdateOrderCommand) ShippingMethod() *string { return c.shippingMethod }

// Notes returns the new note text, nil to keep current.
func (c UpdateOrderCommand) Notes() *string { return c.notes }

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setItems(items []ItemInput) error {
	if items == nil {
		return nil
	}
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("item %d: %d is not greater than 0", i, item.Quantity),
			)
		}
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
			return errs.NewValueIsInvalidError("unitPrice")
		}
		if item.Discount.IsNegative() {
			return errs.NewValueIsInvalidError("discount")
		}
	}
	c.items = items
	c.replaceItems = true
	return nil
}

func (c *UpdateOrderCommand) validateAmounts() error {
	if c.discount != nil && c.discount.IsNegative() {
		return errs.NewValueIsInvalidError("discount")
	}
	if c.tax != nil && c.tax.IsNegative() {
		return errs.NewValueIsInvalidError("tax")
	}
	return nil
}
