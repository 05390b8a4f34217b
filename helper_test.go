package whatif

import (
	"github.com/etnz/whatif/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var (
	decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	dateComparer    = cmp.Comparer(func(a, b date.Date) bool { return a == b })
)

// USD is a helper for test to create a decimal from const.
func USD(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// price is a helper for test to create a price record from const.
func price(day string, v float64) PriceRecord {
	return PriceRecord{Date: date.MustParse(day), Price: decimal.NewFromFloat(v)}
}

// deposit is a helper for test to create a deposit event from const.
func deposit(day string, cash float64) DepositEvent {
	d := date.MustParse(day)
	return DepositEvent{Date: d, Cash: decimal.NewFromFloat(cash), Original: d}
}
