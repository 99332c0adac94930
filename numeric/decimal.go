// Package numeric wraps the exact decimal arithmetic used for price and
// volume math. Summing many small order rows must not lose precision to
// binary floating point, and an empty book must not make division fatal.
package numeric

import (
	"strings"

	"github.com/shopspring/decimal"
)

// displayPlaces is the fixed number of decimal places used for display
// values. Rounding happens only at presentation, never in intermediate
// steps.
const displayPlaces = 4

// Parse converts a feed value into a decimal. Missing or blank values are
// treated as zero; a malformed value also degrades to zero rather than
// failing the aggregation.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FromPercent converts a percentage in [0, 100] to a decimal fraction
// factor (percent / 100).
func FromPercent(percent float64) decimal.Decimal {
	return decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100))
}

// SafeDiv divides a by b, returning zero when the divisor is zero. The
// zero sentinel stands in for the undefined weighted average of an empty
// book.
func SafeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// Fixed formats d with exactly four decimal places for display.
func Fixed(d decimal.Decimal) string {
	return d.StringFixed(displayPlaces)
}
