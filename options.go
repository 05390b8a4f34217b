package whatif

import (
	"github.com/etnz/whatif/date"
	"github.com/rs/zerolog"
)

// Option configures the engine functions. Options that do not apply to a
// given function are ignored by it.
type Option func(*options)

type options struct {
	logger       zerolog.Logger
	today        date.Date
	asOf         date.Date
	policy       DepositPolicy
	duplicates   DuplicatePolicy
	txColumns    TransactionColumns
	priceColumns PriceColumns
}

func newOptions(opts []Option) options {
	o := options{
		logger:       zerolog.Nop(),
		policy:       DefaultDepositPolicy(),
		duplicates:   LastWins,
		txColumns:    DefaultTransactionColumns(),
		priceColumns: DefaultPriceColumns(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.today.IsZero() {
		o.today = date.Today()
	}
	return o
}

// WithLogger traces the engine decisions (skipped rows, rollforwards, purchases) to 'logger'.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithToday sets the last civil day of the timeline. Defaults to date.Today().
func WithToday(today date.Date) Option {
	return func(o *options) { o.today = today }
}

// WithAsOf sets the date of the investor's reported portfolio value.
// The proxy valuation is then taken on exactly that date.
func WithAsOf(asOf date.Date) Option {
	return func(o *options) { o.asOf = asOf }
}

// WithDepositPolicy sets the transaction classification policy.
func WithDepositPolicy(policy DepositPolicy) Option {
	return func(o *options) { o.policy = policy }
}

// WithDuplicatePolicy sets how two price rows on the same date are resolved.
func WithDuplicatePolicy(policy DuplicatePolicy) Option {
	return func(o *options) { o.duplicates = policy }
}

// WithTransactionColumns overrides the transaction export column names.
func WithTransactionColumns(cols TransactionColumns) Option {
	return func(o *options) { o.txColumns = cols }
}

// WithPriceColumns overrides the price history column names.
func WithPriceColumns(cols PriceColumns) Option {
	return func(o *options) { o.priceColumns = cols }
}
