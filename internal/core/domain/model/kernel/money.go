package kernel

import (
	"fmt"

	"catering/internal/pkg/errs"
)

// Money is an immutable monetary amount stored as integer cents.
// All order totals, payments, and balances in the domain are Money values,
// so threshold checks never touch floating point.
//
// The zero value is a valid zero amount. Negative amounts cannot be
// constructed.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money value from an amount in cents.
// Negative amounts are rejected.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{}
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.cents > 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns m minus other, floored at zero. Balances in this domain never
// go negative: overpayment is rejected before subtraction ever would.
func (m Money) Sub(other Money) Money {
	if other.cents >= m.cents {
		return Money{}
	}
	return Money{cents: m.cents - other.cents}
}

// MulInt returns the amount multiplied by a non-negative count.
// Used for line item subtotals (unit price times quantity).
func (m Money) MulInt(n int64) Money {
	if n <= 0 {
		return Money{}
	}
	return Money{cents: m.cents * n}
}

// GreaterOrEqual reports whether m >= other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.cents >= other.cents
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// MeetsPercentOf reports whether m covers at least the given percentage of
// total. The comparison cross-multiplies integers (m*100 >= total*percent)
// to avoid rounding a fractional threshold.
func (m Money) MeetsPercentOf(total Money, percent int64) bool {
	return m.cents*100 >= total.cents*percent
}

// String renders the amount as a decimal with two fraction digits.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
