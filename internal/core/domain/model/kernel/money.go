package kernel

import (
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts. It is backed by an exact
// decimal so sums never accumulate binary floating point drift. Amounts are
// stored and compared at two decimal places; arithmetic keeps full precision
// until rounding at the persistence edge.
//
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromDecimal wraps an exact decimal amount.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// NewMoneyFromString parses a decimal string such as "199.90".
// The parsed amount is rounded to two decimal places.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return Money{amount: d.Round(2)}, nil
}

// MustMoneyFromString is NewMoneyFromString for constants in tests and seeds.
// Panics on malformed input.
func MustMoneyFromString(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns u + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns m multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// IsEqual reports value equality regardless of decimal exponent.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Round2 returns the amount rounded to the storage precision of two decimal
// places.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// Decimal exposes the underlying decimal for persistence and serialization.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
