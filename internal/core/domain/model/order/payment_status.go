package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentStatus tracks how much of an order has been paid. The expected path
// is unpaid -> partially_paid -> paid, but backward moves are allowed so
// refund workflows can unwind payments. Every change must go through the
// explicit change-payment-status operation; nothing mutates this axis as a
// side effect, and it is fully independent of Status.
type PaymentStatus int

const (
	// PaymentStatusUnknown is the zero value and is never valid.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentStatusUnpaid is the initial payment status of every new order.
	PaymentStatusUnpaid

	// PaymentStatusPartiallyPaid marks an order with a partial payment booked.
	PaymentStatusPartiallyPaid

	// PaymentStatusPaid marks a fully paid order.
	PaymentStatusPaid
)

func paymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown:       "unknown",
		PaymentStatusUnpaid:        "unpaid",
		PaymentStatusPartiallyPaid: "partially_paid",
		PaymentStatusPaid:          "paid",
	}
}

func validPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentStatusUnknown is intentionally excluded
	return map[PaymentStatus]string{
		PaymentStatusUnpaid:        "unpaid",
		PaymentStatusPartiallyPaid: "partially_paid",
		PaymentStatusPaid:          "paid",
	}
}

// PaymentStatusFromString parses the lowercase API representation.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range validPaymentStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate rejects PaymentStatusUnknown and values outside the enum.
func (s PaymentStatus) Validate() error {
	if _, ok := validPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the lowercase name. Implements fmt.Stringer; safe on invalid
// values.
func (s PaymentStatus) String() string {
	if name, ok := paymentStatusStrings()[s]; ok {
		return name
	}
	return "unknown"
}
