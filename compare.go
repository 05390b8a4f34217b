package whatif

import (
	"fmt"
	"math"

	"github.com/etnz/whatif/date"
	"github.com/shopspring/decimal"
)

// DaysPerYear is the average length of a civil year, leap years included.
const DaysPerYear = 365.25

var hundred = decimal.NewFromInt(100)

// Comparison compares the investor's actual portfolio with the simulated proxy.
type Comparison struct {
	TotalInvested decimal.Decimal // cash deposited
	EndValue      decimal.Decimal // actual portfolio value, as reported by the investor
	ProxyEndValue decimal.Decimal // terminal valuation of the proxy timeline
	ProxyShares   decimal.Decimal // proxy shares held at the end

	Start date.Date // first timeline point
	End   date.Date // timeline point the comparison is made on
	Years float64   // (End - Start) in days / DaysPerYear

	PortfolioReturn           Percent
	ProxyReturn               Percent
	AnnualizedPortfolioReturn Percent
	AnnualizedProxyReturn     Percent
	Outperformance            Percent // PortfolioReturn - ProxyReturn
	BeatMarket                bool    // PortfolioReturn > ProxyReturn
}

// Compare computes the return statistics of the actual portfolio worth
// 'currentValue' against the proxy timeline, both funded with 'totalInvested'.
//
// The proxy value is the terminal valuation of the timeline, or its valuation
// on exactly the WithAsOf date if set. In that case 'currentValue' is the
// portfolio value on that date, and both returns are computed against the
// cash deposited up to that date, not 'totalInvested'. Statistics that would
// be infinite or undefined are reported as a *DomainError.
func Compare(totalInvested decimal.Decimal, t *Timeline, currentValue decimal.Decimal, opts ...Option) (Comparison, error) {
	o := newOptions(opts)

	if t == nil || len(t.Points) == 0 {
		return Comparison{}, &DomainError{Err: errEmptyTimeline}
	}
	if totalInvested.IsZero() {
		return Comparison{}, &DomainError{Err: ErrZeroInvested}
	}
	if totalInvested.IsNegative() {
		return Comparison{}, &DomainError{Reason: fmt.Sprintf("total invested is %s", totalInvested), Err: ErrZeroInvested}
	}
	if currentValue.IsNegative() {
		return Comparison{}, &DomainError{Reason: fmt.Sprintf("reported value is %s", currentValue), Err: ErrNegativeValue}
	}

	first, _ := t.First()
	terminal, _ := t.Last()
	if !o.asOf.IsZero() {
		p, ok := t.On(o.asOf)
		if !ok {
			return Comparison{}, &LookupError{Date: o.asOf, Reason: "the reported portfolio value date must be a trading day of the timeline"}
		}
		terminal = p
		totalInvested = t.InvestedThrough(o.asOf)
		o.logger.Debug().Stringer("asof", o.asOf).Stringer("invested", totalInvested).Msg("comparing with the deposits made so far")
	}

	c := Comparison{
		TotalInvested: totalInvested,
		EndValue:      currentValue,
		ProxyEndValue: terminal.Valuation,
		ProxyShares:   terminal.Shares,
		Start:         first.Date,
		End:           terminal.Date,
	}
	c.Years = float64(c.End.DaysSince(c.Start)) / DaysPerYear
	if c.Years <= 0 {
		return Comparison{}, &DomainError{Reason: fmt.Sprintf("from %s to %s", c.Start, c.End), Err: ErrNoElapsedTime}
	}

	c.PortfolioReturn = simpleReturn(currentValue, totalInvested)
	c.ProxyReturn = simpleReturn(terminal.Valuation, totalInvested)
	c.AnnualizedPortfolioReturn = annualizedReturn(currentValue, totalInvested, c.Years)
	c.AnnualizedProxyReturn = annualizedReturn(terminal.Valuation, totalInvested, c.Years)
	c.Outperformance = c.PortfolioReturn - c.ProxyReturn
	c.BeatMarket = c.PortfolioReturn > c.ProxyReturn

	o.logger.Debug().Stringer("invested", totalInvested).Stringer("value", currentValue).
		Stringer("proxy", terminal.Valuation).Float64("years", c.Years).Bool("beat", c.BeatMarket).Msg("comparison computed")
	return c, nil
}

// simpleReturn returns (value - invested) / invested in percent.
func simpleReturn(value, invested decimal.Decimal) Percent {
	return Percent(value.Sub(invested).Div(invested).Mul(hundred).InexactFloat64())
}

// annualizedReturn returns (value / invested)^(1/years) - 1 in percent.
func annualizedReturn(value, invested decimal.Decimal, years float64) Percent {
	ratio := value.Div(invested).InexactFloat64()
	return Percent((math.Pow(ratio, 1/years) - 1) * 100)
}
