package whatif

import (
	"errors"
	"fmt"

	"github.com/etnz/whatif/date"
)

// Sentinel errors.
var (
	// ErrSkipRow reports a row that lacks a mandatory field and carries no data.
	ErrSkipRow        = errors.New("row has no data")
	ErrNoTransactions = errors.New("no valid transactions")
	ErrNoPrices       = errors.New("no price listed")
	ErrNoDeposits     = errors.New("no deposit found")
	ErrZeroInvested   = errors.New("total invested is zero")
	ErrNoElapsedTime  = errors.New("no time elapsed between first and last point")
	ErrNegativeValue  = errors.New("portfolio value is negative")
)

// InputError reports a malformed input dataset, before any simulation.
type InputError struct {
	Source string // "transactions" or "prices"
	Row    int    // 1-based data row, 0 when the error is about the whole dataset
	Field  string
	Value  string
	Err    error
}

func (e *InputError) Error() string {
	switch {
	case e.Row > 0 && e.Field != "":
		return fmt.Sprintf("%s row %d: field %q (%q): %v", e.Source, e.Row, e.Field, e.Value, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("%s row %d: %v", e.Source, e.Row, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
}

func (e *InputError) Unwrap() error { return e.Err }

// LookupError reports a date that needs an exact listed price and has none.
type LookupError struct {
	Date   date.Date
	Reason string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no price listed on %s: %s", e.Date, e.Reason)
}

func (e *LookupError) Unwrap() error { return ErrNoPrices }

// DomainError reports statistics that are undefined for the given inputs.
type DomainError struct {
	Reason string
	Err    error
}

func (e *DomainError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("cannot compare: %v", e.Err)
	}
	return fmt.Sprintf("cannot compare: %s: %v", e.Reason, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }
