// Package money provides fixed-point decimal helpers for monetary values.
//
// Every monetary value in the system is scaled to 2 fractional digits and
// rounded half-up at each materialization point. Totals are always computed
// as the sum of already-rounded parts, never as a rounded sum of unrounded
// parts, so that line items and their totals agree to the cent.
package money

import "github.com/shopspring/decimal"

// Scale is the number of fractional digits money values carry.
const Scale = 2

// Amount normalizes a decimal to the money scale, rounding half up.
func Amount(v decimal.Decimal) decimal.Decimal {
	return v.Round(Scale)
}

// FromFloat converts a plain numeric value (e.g. a request field) into a
// money-scaled decimal.
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(Scale)
}

// Percent converts a rate value without rounding. Tax rates may carry more
// than two fractional digits and must not be truncated.
func Percent(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Sum adds an arbitrary number of values and rounds once at the end.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total.Round(Scale)
}

// ToNumber converts a decimal to a plain float64 at money precision for API
// responses.
func ToNumber(v decimal.Decimal) float64 {
	f, _ := v.Round(Scale).Float64()
	return f
}
