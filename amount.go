package whatif

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencyCleaner = strings.NewReplacer("$", "", ",", "", "(", "", ")", "")
	quantityCleaner = strings.NewReplacer(",", "")
)

// ParseCurrency parses a currency string like "$1,234.56" or "($1,234.56)".
//
// A value wrapped in parentheses is negative (accounting notation). The sign
// is applied once the punctuation has been stripped, a minus sign on top of
// the parentheses is an error. It returns false if 's'
// is blank, and an error if it is not a number.
func ParseCurrency(s string) (decimal.Decimal, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false, nil
	}
	negative := strings.Contains(s, "(") && strings.Contains(s, ")")
	clean := strings.TrimSpace(currencyCleaner.Replace(s))
	if negative && strings.Contains(clean, "-") {
		return decimal.Zero, false, fmt.Errorf("ambiguous sign in %q", s)
	}
	v, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false, err
	}
	if negative {
		v = v.Neg()
	}
	return v, true, nil
}

// ParseQuantity parses a quantity like "1,250.5".
//
// Only thousands separators are stripped. Anything that is not a number
// yields a null quantity, never zero.
func ParseQuantity(s string) decimal.NullDecimal {
	v, err := decimal.NewFromString(strings.TrimSpace(quantityCleaner.Replace(s)))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(v)
}
