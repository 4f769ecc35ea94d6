package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money values must be created via NewMoneyFromString, NewMoneyFromDecimal, or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoneyFromString, NewMoneyFromDecimal, or ZeroMoney constructors")

// Money is an immutable value object representing a non-negative USD amount
// with currency precision (2 fractional digits). All pricing arithmetic in the
// domain goes through Money so rounding happens in exactly one place.
//
// The zero value of Money is invalid and will fail validation - use constructors
// to create instances.
//
// Example:
//
//	rate, err := kernel.NewMoneyFromString("2.00")
//	if err != nil {
//	    // Handle validation error
//	}
//	total := rate.MulInt(15) // 30.00
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// ZeroMoney returns a valid Money representing 0.00.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewMoneyFromDecimal creates a Money from a decimal amount.
// The amount is rounded to 2 fractional digits and must not be negative.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount: amount.Round(2),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromString parses a Money from its decimal string representation,
// e.g. "30.00" or "2.5". Returns an error for malformed or negative amounts.
// This is the constructor used when reading prices from configuration,
// since all settings values arrive as free-form strings.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoneyFromDecimal(amount)
}

// Validate checks if the Money was properly constructed using a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the Money multiplied by a whole-number factor,
// rounded to currency precision. Used for per-pound and per-item pricing.
func (m Money) MulInt(factor int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(factor))).Round(2),
		guard:  guard.NewConstructorGuard(),
	}
}

// Max returns the larger of two Money values.
// Used to enforce minimum-order amounts.
func (m Money) Max(other Money) Money {
	if m.amount.GreaterThanOrEqual(other.amount) {
		return m
	}
	return other
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two Money values for equality of amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// String returns the plain decimal representation with 2 fractional digits,
// e.g. "30.00". Currency symbols are a presentation concern and are added
// at the HTTP/UI boundary, not here.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
