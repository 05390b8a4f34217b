package whatif

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Input gathers the raw datasets of an analysis.
type Input struct {
	Transactions []Row           // account activity export, newest first
	Prices       []Row           // proxy instrument price history, any order
	CurrentValue decimal.Decimal // value of the actual portfolio, as reported by the investor
}

// Analysis is the outcome of Analyze.
type Analysis struct {
	Transactions []Transaction
	Report       DepositReport
	Calendar     *Calendar
	Timeline     *Timeline
	Comparison   Comparison
}

// Analyze runs the full reconciliation: it normalizes both datasets, extracts
// the deposits, simulates the proxy timeline and compares it with the
// reported portfolio value.
//
// If only the comparison fails, Analyze returns both the Analysis, without
// Comparison, and the *DomainError.
func Analyze(in Input, opts ...Option) (*Analysis, error) {
	o := newOptions(opts)
	log := o.logger

	if len(in.Transactions) == 0 {
		return nil, &InputError{Source: SourceTransactions, Err: errors.New("no rows")}
	}
	if len(in.Prices) == 0 {
		return nil, &InputError{Source: SourcePrices, Err: errors.New("no rows")}
	}

	txs, err := ParseTransactions(in.Transactions, opts...)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, &InputError{Source: SourceTransactions, Err: ErrNoTransactions}
	}
	report := ExtractDeposits(txs, opts...)
	if len(report.Deposits) == 0 {
		return nil, &InputError{Source: SourceTransactions, Err: ErrNoDeposits}
	}

	cal, err := ParsePrices(in.Prices, opts...)
	if err != nil {
		return nil, err
	}

	tl, err := BuildTimeline(report.Deposits, cal, opts...)
	if err != nil {
		return nil, err
	}

	a := &Analysis{Transactions: txs, Report: report, Calendar: cal, Timeline: tl}
	a.Comparison, err = Compare(report.TotalInvested, tl, in.CurrentValue, opts...)
	if err != nil {
		log.Warn().Err(err).Msg("timeline built but comparison failed")
		return a, err
	}
	return a, nil
}
