// Package currencyutils provides amount-cell cleaning and decimal conversion
// for the loosely formatted numeric values found in bank CSV exports.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbolRe = regexp.MustCompile(`[€$£¥\s]`)

// ParseAmount parses a raw amount cell to a decimal. It strips currency
// symbols and thousands separators and converts parenthesized negatives
// ("(12.00)" -> -12.00). The second return value is false when the cell is
// empty or unparseable; callers treat that as a null amount, not an error.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	standardized := StandardizeAmount(raw)
	if standardized == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// StandardizeAmount converts the amount formats seen in bank exports into a
// form decimal.NewFromString accepts. Handles "$1,234.56", "(45.00)",
// "1 234.56" and plain numbers.
func StandardizeAmount(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	// Thousands separators, currency symbols, non-breaking spaces.
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.ReplaceAll(raw, " ", "")
	raw = currencySymbolRe.ReplaceAllString(raw, "")

	// Accounting-style negatives: (12.00) -> -12.00
	raw = strings.ReplaceAll(raw, "(", "-")
	raw = strings.ReplaceAll(raw, ")", "")

	return raw
}

// RoundCents rounds an amount to two decimal places.
func RoundCents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
