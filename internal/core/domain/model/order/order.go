package order

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer purchase. It owns its items
// exclusively and keeps these invariants:
//
//   - items is non-empty
//   - total equals the sum of item totals
//   - grandTotal equals total - discount + tax and is never negative
//   - orderNumber is immutable once assigned
//   - status and paymentStatus only change through their transition methods
//
// Orders hold weak references to a customer and a staff user by id only; the
// contact details that matter to the order live in the embedded snapshot.
// A soft-deleted order (deletedAt set) is hidden from default reads but keeps
// all business fields so reporting stays intact.
type Order struct {
	id             kernel.UUID
	number         Number
	customerID     *kernel.UUID
	userID         *kernel.UUID
	customer       CustomerSnapshot
	orderDate      time.Time
	items          []*Item
	discount       kernel.Money
	tax            kernel.Money
	total          kernel.Money
	grandTotal     kernel.Money
	status         Status
	paymentStatus  PaymentStatus
	paymentMethod  string
	shippingMethod string
	notes          string
	deletedAt      *time.Time
	createdAt      time.Time
	updatedAt      time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in pending/unpaid state and computes its
// totals. The order number is a candidate only; uniqueness is enforced by the
// repository on insert and collisions are retried by the caller.
func NewOrder(
	id kernel.UUID,
	number Number,
	customerID *kernel.UUID,
	userID *kernel.UUID,
	customer CustomerSnapshot,
	orderDate time.Time,
	items []*Item,
	discount kernel.Money,
	tax kernel.Money,
	paymentMethod string,
	shippingMethod string,
	notes string,
) (*Order, error) {
	o := &Order{
		status:         StatusPending,
		paymentStatus:  PaymentStatusUnpaid,
		paymentMethod:  strings.TrimSpace(paymentMethod),
		shippingMethod: strings.TrimSpace(shippingMethod),
		notes:          strings.TrimSpace(notes),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setUserID(userID),
		o.setCustomer(customer),
		o.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	if err := o.replaceItems(items, discount, tax); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an aggregate from persistence. Status values are
// validated and totals are recomputed from the stored lines, so the loaded
// aggregate honors the same invariants as a fresh one.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	customerID *kernel.UUID,
	userID *kernel.UUID,
	customer CustomerSnapshot,
	orderDate time.Time,
	items []*Item,
	discount kernel.Money,
	tax kernel.Money,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod string,
	shippingMethod string,
	notes string,
	deletedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(
		id, number, customerID, userID, customer, orderDate,
		items, discount, tax, paymentMethod, shippingMethod, notes,
	)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return nil, err
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.deletedAt = deletedAt
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Update applies an order-update request. A nil items slice keeps the current
// lines; a non-nil slice replaces them atomically. Nil money/string pointers
// keep the current values. Totals are recomputed; a violation leaves the
// order unchanged.
func (o *Order) Update(
	items []*Item,
	discount *kernel.Money,
	tax *kernel.Money,
	paymentMethod *string,
	shippingMethod *string,
	notes *string,
) error {
	newItems := o.items
	if items != nil {
		newItems = items
	}

	newDiscount := o.discount
	if discount != nil {
		newDiscount = *discount
	}

	newTax := o.tax
	if tax != nil {
		newTax = *tax
	}

	if err := o.replaceItems(newItems, newDiscount, newTax); err != nil {
		return err
	}

	if paymentMethod != nil {
		o.paymentMethod = strings.TrimSpace(*paymentMethod)
	}
	if shippingMethod != nil {
		o.shippingMethod = strings.TrimSpace(*shippingMethod)
	}
	if notes != nil {
		o.notes = strings.TrimSpace(*notes)
	}
	return nil
}

// ChangeStatus moves the order along the fulfillment state machine.
// Illegal moves fail with InvalidTransitionError and leave the order
// unchanged. Completion never touches paymentStatus: an unpaid-but-fulfilled
// order stays visibly unpaid.
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// ChangePaymentStatus sets the payment axis. Backward moves are allowed
// (refund workflows) but only through this explicit call; persistence
// refreshes updatedAt so every change is audited.
func (o *Order) ChangePaymentStatus(target PaymentStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}
	o.paymentStatus = target
	return nil
}

// IsDeleted reports whether the order is soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.deletedAt != nil
}

// ID returns the aggregate identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the immutable order number.
func (o *Order) Number() Number { return o.number }

// CustomerID returns the weak customer reference, nil for guest orders.
func (o *Order) CustomerID() *kernel.UUID { return o.customerID }

// UserID returns the weak reference to the staff user owning the order.
func (o *Order) UserID() *kernel.UUID { return o.userID }

// Customer returns the contact snapshot captured at order time.
func (o *Order) Customer() CustomerSnapshot { return o.customer }

// OrderDate returns the business date of the order.
func (o *Order) OrderDate() time.Time { return o.orderDate }

// Items returns the order lines. The slice is a copy; the aggregate's own
// lines can only change through Update.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Discount returns the order-level discount.
func (o *Order) Discount() kernel.Money { return o.discount }

// Tax returns the order-level tax.
func (o *Order) Tax() kernel.Money { return o.tax }

// Total returns the sum of item totals.
func (o *Order) Total() kernel.Money { return o.total }

// GrandTotal returns total - discount + tax.
func (o *Order) GrandTotal() kernel.Money { return o.grandTotal }

// Status returns the fulfillment status.
func (o *Order) Status() Status { return o.status }

// PaymentStatus returns the payment status.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// PaymentMethod returns the chosen payment method label.
func (o *Order) PaymentMethod() string { return o.paymentMethod }

// ShippingMethod returns the chosen shipping method label.
func (o *Order) ShippingMethod() string { return o.shippingMethod }

// Notes returns the optional free-text note.
func (o *Order) Notes() string { return o.notes }

// DeletedAt returns the soft-delete marker, nil when the order is live.
func (o *Order) DeletedAt() *time.Time { return o.deletedAt }

// CreatedAt returns the persistence creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the persistence update timestamp used for optimistic
// concurrency checks.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// replaceItems swaps the item set and monetary parameters, recomputing totals
// first so a failure leaves the aggregate untouched.
func (o *Order) replaceItems(items []*Item, discount, tax kernel.Money) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	total, grandTotal, err := Totals(items, discount, tax)
	if err != nil {
		return err
	}

	o.items = items
	o.discount = discount
	o.tax = tax
	o.total = total
	o.grandTotal = grandTotal
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setUserID(userID *kernel.UUID) error {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return err
		}
	}
	o.userID = userID
	return nil
}

func (o *Order) setCustomer(customer CustomerSnapshot) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}
