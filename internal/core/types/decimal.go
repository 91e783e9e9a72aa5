// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors; values are widened to
// float64 only at the JSON boundary.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// Round2 rounds a monetary value to 2 decimal places (half away from zero).
// Invoice totals are stored at this precision.
func Round2(m Money) Money {
	return m.Round(2)
}

// ApplyDiscount returns round(price - price*discount, 2).
// Discount is a fraction in [0, 1].
func ApplyDiscount(price, discount Money) Money {
	return Round2(price.Sub(price.Mul(discount)))
}
