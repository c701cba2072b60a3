// Package money centralizes parsing of the decimal-precision strings used for
// monetary and percentage columns. Amounts cross the API boundary as strings;
// arithmetic happens on shopspring decimals so no float drift is introduced.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a decimal string to a decimal.Decimal. The boolean is false
// for blank or non-numeric input.
func Parse(s string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseLenient converts a decimal string to a decimal.Decimal, degrading
// blank or non-numeric input to zero. This mirrors the permissive coercion
// applied to loosely typed form and upload data.
func ParseLenient(s string) decimal.Decimal {
	d, ok := Parse(s)
	if !ok {
		return decimal.Zero
	}
	return d
}

// IsValid reports whether s parses as a decimal value.
func IsValid(s string) bool {
	_, ok := Parse(s)
	return ok
}
