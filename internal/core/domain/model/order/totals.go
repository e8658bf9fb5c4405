package order

import (
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// LineTotal computes unitPrice * quantity - discount for one order line.
// Fails with a validation error when quantity < 1, unitPrice < 0,
// discount < 0, or the discount exceeds the undiscounted line amount.
func LineTotal(unitPrice kernel.Money, quantity int, discount kernel.Money) (kernel.Money, error) {
	if quantity < 1 {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unitPrice.IsNegative() {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}
	if discount.IsNegative() {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("%s is negative", discount),
		)
	}

	gross := unitPrice.MulInt(quantity)
	if discount.Cmp(gross) > 0 {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("%s exceeds line amount %s", discount, gross),
		)
	}

	return gross.Sub(discount), nil
}

// Totals computes the order-level amounts from its lines:
// total = sum of line totals, grandTotal = total - discount + tax.
// Fails with a validation error when the order discount or tax is negative or
// the resulting grand total would be negative. A negative grand total always
// aborts the operation; it is never clamped to zero.
func Totals(items []*Item, discount, tax kernel.Money) (total, grandTotal kernel.Money, err error) {
	if discount.IsNegative() {
		return kernel.Money{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("%s is negative", discount),
		)
	}
	if tax.IsNegative() {
		return kernel.Money{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"tax",
			fmt.Errorf("%s is negative", tax),
		)
	}

	total = kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Total())
	}

	grandTotal = total.Sub(discount).Add(tax)
	if grandTotal.IsNegative() {
		return kernel.Money{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"grandTotal",
			fmt.Errorf("%s is negative", grandTotal),
		)
	}

	return total, grandTotal, nil
}
