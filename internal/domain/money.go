package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParsePriceCents converts a decimal price string such as "49.99" into
// integer cents. Catalog prices are authored as strings and held as cents
// internally so totals never drift.
func ParsePriceCents(price string) (int64, error) {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", price, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("parse price %q: negative", price)
	}
	cents := d.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return 0, fmt.Errorf("parse price %q: sub-cent precision", price)
	}
	return cents.IntPart(), nil
}

// FormatCents renders integer cents as a dollar display string ("$49.99").
// Display formatting is the only place amounts leave cents.
func FormatCents(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}
