// Package currencyutils provides the amount parsing and formatting rules used for card statements.
package currencyutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyAmount is returned by ParseAmount for a blank field.
var ErrEmptyAmount = errors.New("amount is empty")

// ParseAmount parses a statement amount such as "12.50", "-3", "$1,234.56" or "1e2".
// A leading dollar sign and comma thousands separators are accepted; anything else
// that decimal cannot read is an error. Blank input is an error, never zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, ErrEmptyAmount
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// StandardizeAmount trims the field and drops the dollar sign and comma separators.
// "-$1,234.50" and "$-1,234.50" both become "-1234.50".
func StandardizeAmount(amountStr string) string {
	s := strings.TrimSpace(amountStr)
	s = strings.ReplaceAll(s, ",", "")
	if strings.HasPrefix(s, "-$") {
		s = "-" + s[2:]
	}
	s = strings.TrimPrefix(s, "$")
	return strings.TrimSpace(s)
}

// HasFraction reports whether amount carries a fractional part: either a non-zero
// fraction or decimal places in its representation ("15.00" does, "15" does not).
func HasFraction(amount decimal.Decimal) bool {
	return amount.Exponent() < 0 || !amount.Equal(amount.Truncate(0))
}

// FormatDollars formats amount as "$" followed by the value with two decimal places
// when it has a fractional part, or as a bare integer otherwise.
//
//	FormatDollars(42)     == "$42"
//	FormatDollars(42.5)   == "$42.50"
//	FormatDollars(42.567) == "$42.57"
func FormatDollars(amount decimal.Decimal) string {
	if HasFraction(amount) {
		return "$" + amount.StringFixed(2)
	}
	return "$" + amount.StringFixed(0)
}
