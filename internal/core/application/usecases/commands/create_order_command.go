package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is one requested order line. Product name, code, and the default
// unit price are snapshotted from the catalog by the handler; UnitPrice, when
// set, overrides the catalog price (back-office manual pricing). Any
// client-supplied line total is ignored; totals are recomputed server-side.
type ItemInput struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice *kernel.Money
	Discount  kernel.Money
	Notes     string
}

// CreateOrderCommand carries a validated order-creation request. Customer
// name and phone are required unless a customer id is supplied for directory
// prefill.
type CreateOrderCommand struct { //nolint:recvcheck // pointer receivers used for construction only
	orderID         kernel.UUID
	customerID      *kernel.UUID
	userID          *kernel.UUID
	customerName    string
	customerPhone   string
	customerEmail   string
	customerAddress string
	orderDate       time.Time
	items           []ItemInput
	discount        kernel.Money
	tax             kernel.Money
	paymentMethod   string
	shippingMethod  string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates and builds an order-creation command.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID *kernel.UUID,
	userID *kernel.UUID,
	customerName string,
	customerPhone string,
	customerEmail string,
	customerAddress string,
	orderDate time.Time,
	items []ItemInput,
	discount kernel.Money,
	tax kernel.Money,
	paymentMethod string,
	shippingMethod string,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerEmail:   strings.TrimSpace(customerEmail),
		customerAddress: strings.TrimSpace(customerAddress),
		orderDate:       orderDate,
		paymentMethod:   strings.TrimSpace(paymentMethod),
		shippingMethod:  strings.TrimSpace(shippingMethod),
		notes:           strings.TrimSpace(notes),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customerID, customerName, customerPhone),
		cmd.setUserID(userID),
		cmd.setItems(items),
		cmd.setAmounts(discount, tax),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if cmd.orderDate.IsZero() {
		cmd.orderDate = time.Now().UTC()
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new aggregate will carry.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the optional weak customer reference.
func (c CreateOrderCommand) CustomerID() *kernel.UUID { return c.customerID }

// UserID returns the optional staff user reference.
func (c CreateOrderCommand) UserID() *kernel.UUID { return c.userID }

// CustomerName returns the requested snapshot name (may be empty when a
// customer id is supplied).
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// CustomerPhone returns the requested snapshot phone.
func (c CreateOrderCommand) CustomerPhone() string { return c.customerPhone }

// CustomerEmail returns the requested snapshot email.
func (c CreateOrderCommand) CustomerEmail() string { return c.customerEmail }

// CustomerAddress returns the requested snapshot address.
func (c CreateOrderCommand) CustomerAddress() string { return c.customerAddress }

// OrderDate returns the business date of the order.
func (c CreateOrderCommand) OrderDate() time.Time { return c.orderDate }

// Items returns the requested lines.
func (c CreateOrderCommand) Items() []ItemInput { return c.items }

// Discount returns the order-level discount.
func (c CreateOrderCommand) Discount() kernel.Money { return c.discount }

// Tax returns the order-level tax.
func (c CreateOrderCommand) Tax() kernel.Money { return c.tax }

// PaymentMethod returns the payment method label.
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }

// ShippingMethod returns the shipping method label.
func (c CreateOrderCommand) ShippingMethod() string { return c.shippingMethod }

// Notes returns the optional order note.
func (c CreateOrderCommand) Notes() string { return c.notes }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customerID *kernel.UUID, name, phone string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	} else {
		// Guest order: the snapshot fields are all we will ever have.
		if name == "" {
			return errs.NewValueIsRequiredError("customerName")
		}
		if phone == "" {
			return errs.NewValueIsRequiredError("customerPhone")
		}
	}

	c.customerID = customerID
	c.customerName = name
	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setUserID(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
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
			return errs.NewValueIsInvalidErrorWithCause(
				"unitPrice",
				fmt.Errorf("item %d: %s is negative", i, item.UnitPrice),
			)
		}
		if item.Discount.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(
				"discount",
				fmt.Errorf("item %d: %s is negative", i, item.Discount),
			)
		}
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setAmounts(discount, tax kernel.Money) error {
	if discount.IsNegative() {
		return errs.NewValueIsInvalidError("discount")
	}
	if tax.IsNegative() {
		return errs.NewValueIsInvalidError("tax")
	}
	c.discount = discount
	c.tax = tax
	return nil
}
