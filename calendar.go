package whatif

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/etnz/whatif/date"
	"github.com/shopspring/decimal"
)

// PriceRecord is the listed price of the proxy instrument on a trading day.
type PriceRecord struct {
	Date          date.Date
	Price         decimal.Decimal // closing price, always positive
	Open          decimal.Decimal
	High          decimal.Decimal
	Low           decimal.Decimal
	Volume        string // as displayed by the source, e.g. "3.21M"
	ChangePercent string // as displayed by the source, e.g. "-0.45%"
}

// DuplicatePolicy decides which record a Calendar keeps when two price rows share a date.
type DuplicatePolicy int

const (
	LastWins         DuplicatePolicy = iota // the later row replaces the earlier one
	FirstWins                               // the earlier row is kept
	RejectDuplicates                        // a duplicate date is an input error
)

// errDuplicateDate is returned by Calendar.add under RejectDuplicates.
var errDuplicateDate = errors.New("duplicate price date")

func (p DuplicatePolicy) String() string {
	switch p {
	case LastWins:
		return "last"
	case FirstWins:
		return "first"
	case RejectDuplicates:
		return "reject"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

// ParseDuplicatePolicy parses "last", "first" or "reject".
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return LastWins, nil
	case "first":
		return FirstWins, nil
	case "reject":
		return RejectDuplicates, nil
	default:
		return LastWins, fmt.Errorf("unknown duplicate policy %q want one of last, first, reject", s)
	}
}

// Calendar is the trading calendar of the proxy instrument: its prices sorted
// by date, at most one per date. Weekends and holidays are absent.
type Calendar struct {
	prices     date.History[PriceRecord]
	duplicates int
}

// NewCalendar returns an empty Calendar.
func NewCalendar() *Calendar { return &Calendar{} }

// NewCalendarFrom returns a Calendar holding 'records', later records
// replacing earlier ones on the same date.
func NewCalendarFrom(records ...PriceRecord) *Calendar {
	c := NewCalendar()
	for _, p := range records {
		c.add(p, LastWins)
	}
	return c
}

// add inserts 'p' resolving a duplicate date with 'policy'.
func (c *Calendar) add(p PriceRecord, policy DuplicatePolicy) error {
	if c.prices.Has(p.Date) {
		c.duplicates++
		switch policy {
		case FirstWins:
			return nil
		case RejectDuplicates:
			return errDuplicateDate
		}
	}
	c.prices.Append(p.Date, p)
	return nil
}

// PriceOn returns the price listed on exactly 'day'.
//
// There is no fallback to a nearby trading day: a weekend or a holiday has no price.
func (c *Calendar) PriceOn(day date.Date) (PriceRecord, bool) { return c.prices.Get(day) }

// Has reports whether 'day' is a trading day of the calendar.
func (c *Calendar) Has(day date.Date) bool { return c.prices.Has(day) }

// Len returns the number of trading days.
func (c *Calendar) Len() int { return c.prices.Len() }

// Duplicates returns the number of rows that collided with an existing date.
func (c *Calendar) Duplicates() int { return c.duplicates }

// First returns the earliest listed price, zero if the calendar is empty.
func (c *Calendar) First() PriceRecord {
	_, p := c.prices.First()
	return p
}

// Last returns the latest listed price, zero if the calendar is empty.
func (c *Calendar) Last() PriceRecord {
	_, p := c.prices.Latest()
	return p
}

// Span returns the dates of the first and last listed prices.
func (c *Calendar) Span() date.Range {
	first, _ := c.prices.First()
	last, _ := c.prices.Latest()
	return date.Range{From: first, To: last}
}

// Records returns an iterator over all prices in chronological order.
func (c *Calendar) Records() iter.Seq[PriceRecord] {
	return func(yield func(PriceRecord) bool) {
		for _, p := range c.prices.Values() {
			if !yield(p) {
				return
			}
		}
	}
}
