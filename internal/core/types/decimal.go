// Package types provides common type aliases and utilities.
package types

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
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

// IsFinite reports whether f can be carried into a Money value.
// decimal.NewFromFloat panics on NaN and Inf, so every boundary that
// accepts a float must check this first.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// RoundMoney rounds to 2 decimal places for presentation.
// Core arithmetic stays exact; rounding happens only at the edges.
func RoundMoney(m Money) Money {
	return m.Round(2)
}

// MoneyFloat converts a Money value to a display float with 2 decimals.
func MoneyFloat(m Money) float64 {
	return m.Round(2).InexactFloat64()
}
