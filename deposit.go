package whatif

import (
	"slices"
	"strings"

	"github.com/etnz/whatif/date"
	"github.com/shopspring/decimal"
)

// DepositEvent is a cash contribution to be converted into proxy shares.
type DepositEvent struct {
	Date     date.Date       // date the cash is invested, after rollforward
	Cash     decimal.Decimal // always positive
	Original date.Date       // date of the deposit in the export
}

// Class is the outcome of the classification of a transaction.
type Class int

const (
	Counted      Class = iota // a genuine cash deposit
	Cancelled                 // a cancelled deposit, not netted against the deposit it cancels
	Excluded                  // a known code outside the model: trades, fees, dividends...
	Unrecognized              // an unknown code, or a deposit code with an unknown description
)

func (c Class) String() string {
	switch c {
	case Counted:
		return "counted"
	case Cancelled:
		return "cancelled"
	case Excluded:
		return "excluded"
	default:
		return "unrecognized"
	}
}

// DepositPolicy decides which transactions are genuine cash deposits.
type DepositPolicy struct {
	Code          TransCode   // code of cash transfers
	DepositMarker string      // description of a genuine deposit
	CancelMarker  string      // description of a cancelled deposit
	Excluded      []TransCode // known codes outside the model
}

// DefaultDepositPolicy returns the policy for a Robinhood account activity export.
func DefaultDepositPolicy() DepositPolicy {
	return DepositPolicy{
		Code:          CodeACH,
		DepositMarker: "ACH Deposit",
		CancelMarker:  "ACH Cancel",
		Excluded: []TransCode{
			CodeBuy, CodeBTO, CodeSell, CodeSTC, CodeSTO, CodeBTC,
			CodeINT, CodeCDIV, CodeREC,
			CodeAFEE, CodeDFEE,
			CodeBCXL, CodeSCXL, CodeSOFF, CodeSPL, CodeSPR, CodeSXCH, CodeTA,
			CodeMRGC, CodeMRGS, CodeOCA, CodeOEXP, CodeSLIP, CodeFUTSWP, CodeDTAX,
		},
	}
}

// Classify returns the class of 'tx' under the policy.
func (p DepositPolicy) Classify(tx Transaction) Class {
	if tx.Code != p.Code {
		if slices.Contains(p.Excluded, tx.Code) {
			return Excluded
		}
		return Unrecognized
	}
	switch {
	case matches(tx.Description, p.DepositMarker) && tx.Amount.IsPositive():
		return Counted
	case matches(tx.Description, p.CancelMarker):
		return Cancelled
	default:
		return Unrecognized
	}
}

func matches(description, marker string) bool {
	return marker != "" && strings.EqualFold(strings.TrimSpace(description), strings.TrimSpace(marker))
}

// DepositReport is the result of ExtractDeposits.
type DepositReport struct {
	Deposits      []DepositEvent    // counted deposits, chronological, same-day deposits not merged
	TotalInvested decimal.Decimal   // sum of the counted deposits
	Cancelled     []Transaction     // cancelled deposits, left out of TotalInvested
	Excluded      map[TransCode]int // number of excluded transactions per code
	Unrecognized  []Transaction     // transactions the policy could not classify
}

// CancelledTotal returns the cash of the cancelled deposits, as an absolute value.
//
// It is not netted against TotalInvested: a cancellation is not matched to the
// deposit it cancels.
func (r DepositReport) CancelledTotal() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range r.Cancelled {
		total = total.Add(tx.Amount.Abs())
	}
	return total
}

// UnrecognizedCodes returns the distinct codes of the unrecognized transactions, sorted.
func (r DepositReport) UnrecognizedCodes() []TransCode {
	codes := make([]TransCode, 0, len(r.Unrecognized))
	for _, tx := range r.Unrecognized {
		codes = append(codes, tx.Code)
	}
	slices.Sort(codes)
	return slices.Compact(codes)
}

// ExtractDeposits filters the transaction log down to the genuine cash deposits.
func ExtractDeposits(txs []Transaction, opts ...Option) DepositReport {
	o := newOptions(opts)
	log := o.logger

	r := DepositReport{
		TotalInvested: decimal.Zero,
		Excluded:      make(map[TransCode]int),
	}
	for _, tx := range txs {
		switch o.policy.Classify(tx) {
		case Counted:
			r.Deposits = append(r.Deposits, DepositEvent{Date: tx.ActivityDate, Cash: tx.Amount, Original: tx.ActivityDate})
			r.TotalInvested = r.TotalInvested.Add(tx.Amount)
		case Cancelled:
			r.Cancelled = append(r.Cancelled, tx)
			log.Warn().Stringer("date", tx.ActivityDate).Stringer("amount", tx.Amount).
				Msg("cancelled deposit is not netted against the deposit it cancels")
		case Excluded:
			r.Excluded[tx.Code]++
			log.Debug().Str("code", string(tx.Code)).Stringer("amount", tx.Amount).Msg("ignoring transaction")
		case Unrecognized:
			r.Unrecognized = append(r.Unrecognized, tx)
			log.Warn().Int("row", tx.Row).Str("code", string(tx.Code)).Str("description", tx.Description).
				Stringer("amount", tx.Amount).Msg("unrecognized transaction")
		}
	}
	slices.SortStableFunc(r.Deposits, func(a, b DepositEvent) int { return a.Date.Compare(b.Date) })
	log.Debug().Int("deposits", len(r.Deposits)).Stringer("invested", r.TotalInvested).Msg("deposits extracted")
	return r
}
