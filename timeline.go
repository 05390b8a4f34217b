package whatif

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/whatif/date"
	"github.com/shopspring/decimal"
)

// Purchase is the conversion of a day's deposits into proxy shares.
type Purchase struct {
	Cash   decimal.Decimal // sum of the deposits invested that day
	Shares decimal.Decimal // Cash / Price
	Price  decimal.Decimal
}

// TimelinePoint is the simulated proxy position at the end of a trading day.
type TimelinePoint struct {
	Date      date.Date
	Shares    decimal.Decimal // cumulative shares held
	Price     decimal.Decimal // price listed that day
	Valuation decimal.Decimal // Shares * Price
	Purchase  *Purchase       // nil if nothing was invested that day
}

// Timeline is the day by day simulated proxy portfolio.
type Timeline struct {
	Points   []TimelinePoint // one per trading day from the first deposit to the end
	Deposits []DepositEvent  // deposits as invested, after rollforward
	Start    date.Date       // date of the first deposit
	End      date.Date       // last civil day walked
}

// First returns the first point of the timeline.
func (t *Timeline) First() (TimelinePoint, bool) {
	if len(t.Points) == 0 {
		return TimelinePoint{}, false
	}
	return t.Points[0], true
}

// Last returns the last point of the timeline, its valuation is the terminal valuation.
func (t *Timeline) Last() (TimelinePoint, bool) {
	if len(t.Points) == 0 {
		return TimelinePoint{}, false
	}
	return t.Points[len(t.Points)-1], true
}

// On returns the point on exactly 'day'.
func (t *Timeline) On(day date.Date) (TimelinePoint, bool) {
	i, found := slices.BinarySearchFunc(t.Points, day, func(p TimelinePoint, d date.Date) int { return p.Date.Compare(d) })
	if !found {
		return TimelinePoint{}, false
	}
	return t.Points[i], true
}

// Purchases returns the points where shares were bought.
func (t *Timeline) Purchases() []TimelinePoint {
	var res []TimelinePoint
	for _, p := range t.Points {
		if p.Purchase != nil {
			res = append(res, p)
		}
	}
	return res
}

// Invested returns the total cash converted into shares.
func (t *Timeline) Invested() decimal.Decimal {
	total := decimal.Zero
	for _, d := range t.Deposits {
		total = total.Add(d.Cash)
	}
	return total
}

// InvestedThrough returns the cash converted into shares on or before 'day'.
func (t *Timeline) InvestedThrough(day date.Date) decimal.Decimal {
	total := decimal.Zero
	for _, d := range t.Deposits {
		if !d.Date.After(day) {
			total = total.Add(d.Cash)
		}
	}
	return total
}

// BuildTimeline simulates buying the proxy instrument with every deposit.
//
// It walks every civil day from the first deposit to today (see WithToday).
// A deposit on a day without a listed price is rolled forward to the next
// civil day, again and again until it reaches a trading day. A deposit dated
// before the first listed price, or rolled past the last one, is a
// *LookupError: no other day's price stands in for it. Each trading day
// converts the sum of its deposits into shares at that day's exact price and
// emits one point, even when nothing was bought.
//
// 'deposits' is not modified.
func BuildTimeline(deposits []DepositEvent, cal *Calendar, opts ...Option) (*Timeline, error) {
	o := newOptions(opts)
	log := o.logger

	if len(deposits) == 0 {
		return nil, ErrNoDeposits
	}
	if cal == nil || cal.Len() == 0 {
		return nil, ErrNoPrices
	}
	for _, d := range deposits {
		if !d.Cash.IsPositive() {
			return nil, &InputError{Source: SourceTransactions, Field: "deposit", Value: d.Cash.String(),
				Err: fmt.Errorf("deposit on %s must be positive", d.Date)}
		}
	}

	work := slices.Clone(deposits)
	slices.SortStableFunc(work, func(a, b DepositEvent) int { return a.Date.Compare(b.Date) })
	for i := range work {
		if work[i].Original.IsZero() {
			work[i].Original = work[i].Date
		}
	}

	start, end := work[0].Date, o.today
	if start.After(end) {
		return nil, &InputError{Source: SourceTransactions, Field: "deposit", Value: start.String(),
			Err: fmt.Errorf("first deposit is after %s", end)}
	}

	if listed := cal.First().Date; start.Before(listed) {
		early := work[0]
		return nil, &LookupError{
			Date: early.Original,
			Reason: fmt.Sprintf("deposit of %s cannot be invested: the price history starts on %s",
				early.Cash, listed),
		}
	}

	t := &Timeline{Start: start, End: end}
	shares := decimal.Zero
	next := 0 // work[next:] are the deposits not invested yet.
	for day := range date.Days(start, end) {
		cash := decimal.Zero
		j := next
		for ; j < len(work) && work[j].Date == day; j++ {
			cash = cash.Add(work[j].Cash)
		}

		p, ok := cal.PriceOn(day)
		if !ok {
			if cash.IsPositive() {
				for k := next; k < j; k++ {
					work[k].Date = day.Add(1)
				}
				log.Debug().Stringer("from", day).Stringer("to", day.Add(1)).Stringer("cash", cash).
					Int("deposits", j-next).Msg("no price listed, rolling deposits forward")
			}
			continue
		}
		next = j

		point := TimelinePoint{Date: day, Price: p.Price}
		if cash.IsPositive() {
			bought := cash.Div(p.Price)
			shares = shares.Add(bought)
			point.Purchase = &Purchase{Cash: cash, Shares: bought, Price: p.Price}
			log.Debug().Stringer("date", day).Stringer("cash", cash).Stringer("price", p.Price).
				Stringer("shares", bought).Msg("buying proxy shares")
		}
		point.Shares = shares
		point.Valuation = shares.Mul(p.Price)
		t.Points = append(t.Points, point)
	}

	if next < len(work) {
		pending := work[next]
		return nil, &LookupError{
			Date: pending.Original,
			Reason: fmt.Sprintf("deposit of %s cannot be invested: no price listed from %s to %s (last listed price on %s)",
				pending.Cash, pending.Original, end, cal.Last().Date),
		}
	}
	t.Deposits = work

	if last, ok := t.Last(); ok {
		log.Debug().Int("points", len(t.Points)).Stringer("shares", last.Shares).
			Stringer("valuation", last.Valuation).Msg("timeline built")
	}
	return t, nil
}

// errEmptyTimeline is returned when a computation needs at least one point.
var errEmptyTimeline = errors.New("empty timeline")
