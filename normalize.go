package whatif

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/whatif/date"
	"github.com/shopspring/decimal"
)

// Source names used in InputError.
const (
	SourceTransactions = "transactions"
	SourcePrices       = "prices"
)

// NormalizeTransaction converts a raw row into a Transaction.
//
// It returns ErrSkipRow if the row has no activity date or no transaction
// code, and an *InputError if a present field is malformed.
func NormalizeTransaction(row Row, cols TransactionColumns) (Transaction, error) {
	rawDate, code := row.get(cols.ActivityDate), row.get(cols.Code)
	if rawDate == "" || code == "" {
		return Transaction{}, ErrSkipRow
	}
	fieldErr := func(field, value string, err error) error {
		return &InputError{Source: SourceTransactions, Field: field, Value: value, Err: err}
	}

	on, err := date.Parse(rawDate)
	if err != nil {
		return Transaction{}, fieldErr(cols.ActivityDate, rawDate, err)
	}
	tx := Transaction{
		ActivityDate: on,
		Instrument:   row.get(cols.Instrument),
		Description:  row.get(cols.Description),
		Code:         TransCode(code),
		Quantity:     ParseQuantity(row.get(cols.Quantity)),
	}
	// process and settle dates are informative only.
	tx.ProcessDate, _ = date.Parse(row.get(cols.ProcessDate))
	tx.SettleDate, _ = date.Parse(row.get(cols.SettleDate))

	if price, ok, err := ParseCurrency(row.get(cols.Price)); err == nil && ok {
		tx.Price = decimal.NewNullDecimal(price)
	}

	raw := row.get(cols.Amount)
	amount, _, err := ParseCurrency(raw)
	if err != nil {
		return Transaction{}, fieldErr(cols.Amount, raw, err)
	}
	tx.Amount = amount
	return tx, nil
}

// ParseTransactions normalizes the rows of a transaction export.
//
// Rows without data are skipped, rows with a zero amount are dropped, and the
// result is in chronological order. Exports list the most recent activity
// first, so rows of the same day keep the reverse of their export order.
func ParseTransactions(rows []Row, opts ...Option) ([]Transaction, error) {
	o := newOptions(opts)
	log := o.logger.With().Str("source", SourceTransactions).Logger()

	txs := make([]Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := NormalizeTransaction(row, o.txColumns)
		if errors.Is(err, ErrSkipRow) {
			log.Debug().Int("row", i+1).Msg("skipping row without date or code")
			continue
		}
		if err != nil {
			return nil, withRow(err, i+1)
		}
		if tx.Amount.IsZero() {
			log.Debug().Int("row", i+1).Str("code", string(tx.Code)).Msg("dropping zero amount transaction")
			continue
		}
		tx.Row = i + 1
		txs = append(txs, tx)
	}
	slices.Reverse(txs)
	slices.SortStableFunc(txs, func(a, b Transaction) int { return a.ActivityDate.Compare(b.ActivityDate) })
	log.Debug().Int("rows", len(rows)).Int("transactions", len(txs)).Msg("transactions normalized")
	return txs, nil
}

// withRow sets the row number of an *InputError.
func withRow(err error, row int) error {
	var ierr *InputError
	if errors.As(err, &ierr) {
		ierr.Row = row
	}
	return err
}

// NormalizePrice converts a raw row into a PriceRecord.
//
// It returns ErrSkipRow if the row has no date or no price, and an
// *InputError if a present field is malformed or the price is not positive.
func NormalizePrice(row Row, cols PriceColumns) (PriceRecord, error) {
	rawDate, rawPrice := row.get(cols.Date), row.get(cols.Price)
	if rawDate == "" || rawPrice == "" {
		return PriceRecord{}, ErrSkipRow
	}
	fieldErr := func(field, value string, err error) error {
		return &InputError{Source: SourcePrices, Field: field, Value: value, Err: err}
	}

	on, err := date.Parse(rawDate)
	if err != nil {
		return PriceRecord{}, fieldErr(cols.Date, rawDate, err)
	}
	price, _, err := ParseCurrency(rawPrice)
	if err != nil {
		return PriceRecord{}, fieldErr(cols.Price, rawPrice, err)
	}
	if !price.IsPositive() {
		return PriceRecord{}, fieldErr(cols.Price, rawPrice, fmt.Errorf("price must be positive"))
	}
	p := PriceRecord{
		Date:          on,
		Price:         price,
		Volume:        row.get(cols.Volume),
		ChangePercent: row.get(cols.ChangePercent),
	}
	for _, f := range []struct {
		name string
		dst  *decimal.Decimal
	}{
		{cols.Open, &p.Open},
		{cols.High, &p.High},
		{cols.Low, &p.Low},
	} {
		raw := row.get(f.name)
		v, _, err := ParseCurrency(raw)
		if err != nil {
			return PriceRecord{}, fieldErr(f.name, raw, err)
		}
		*f.dst = v
	}
	return p, nil
}

// ParsePrices normalizes the rows of a price history export into a Calendar.
//
// Rows can come in any order. Two rows on the same date are resolved with the
// DuplicatePolicy option.
func ParsePrices(rows []Row, opts ...Option) (*Calendar, error) {
	o := newOptions(opts)
	log := o.logger.With().Str("source", SourcePrices).Logger()

	cal := NewCalendar()
	for i, row := range rows {
		p, err := NormalizePrice(row, o.priceColumns)
		if errors.Is(err, ErrSkipRow) {
			log.Debug().Int("row", i+1).Msg("skipping row without date or price")
			continue
		}
		if err != nil {
			return nil, withRow(err, i+1)
		}
		before := cal.Duplicates()
		if err := cal.add(p, o.duplicates); err != nil {
			return nil, &InputError{Source: SourcePrices, Row: i + 1, Field: o.priceColumns.Date, Value: p.Date.String(), Err: err}
		}
		if cal.Duplicates() > before {
			log.Warn().Int("row", i+1).Stringer("date", p.Date).Stringer("policy", o.duplicates).Msg("duplicate price date")
		}
	}
	if cal.Len() == 0 {
		return nil, &InputError{Source: SourcePrices, Err: ErrNoPrices}
	}
	first, last := cal.First(), cal.Last()
	log.Debug().Int("prices", cal.Len()).Stringer("first", first.Date).Stringer("last", last.Date).Msg("price calendar built")
	return cal, nil
}
