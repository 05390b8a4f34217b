// Package renderer renders the results of the whatif engine as markdown documents.
package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format holds what the documents need beyond the engine results.
type Format struct {
	Ticker   string // name of the proxy instrument
	Currency string // ISO 4217 code of the account currency
}

// DefaultFormat is a USD account compared with VTI.
var DefaultFormat = Format{Ticker: "VTI", Currency: money.USD}

// currency returns the go-money currency of the format, never nil.
func (f Format) currency() money.Currency {
	code := f.Currency
	if code == "" {
		code = money.USD
	}
	// the Money constructor falls back to a generic currency for unknown codes.
	return *money.New(0, code).Currency()
}

// Cash formats an amount in the format currency, like "$1,234.56".
func (f Format) Cash(v decimal.Decimal) string {
	cur := f.currency()
	return cur.Formatter().Format(v.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// SignedCash is Cash with an explicit sign.
func (f Format) SignedCash(v decimal.Decimal) string {
	if v.IsPositive() {
		return "+" + f.Cash(v)
	}
	return f.Cash(v)
}

// shares formats a number of shares with 4 decimals.
func shares(v decimal.Decimal) string { return v.StringFixed(4) }
