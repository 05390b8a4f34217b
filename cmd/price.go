package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/whatif"
	"github.com/google/subcommands"
)

type priceCmd struct {
	prices string
	date   string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "display the proxy price listed on a date" }
func (*priceCmd) Usage() string {
	return `wif price -p <prices> -d <date>

  Displays the price listed on exactly that date. Weekends and holidays have none.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.prices, "p", "", "proxy price history (CSV or JSON, see the configuration)")
	f.StringVar(&c.date, "d", "", "date to look up")
}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDate("d", c.date)
	if err != nil || on.IsZero() {
		return fail(subcommands.ExitUsageError, "Error: -d must be a date, got %q", c.date)
	}
	a, err := newApp()
	if err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}
	defer a.Close()

	rows, err := a.readPrices(ctx, c.prices)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error reading prices: %v", err)
	}
	cal, err := whatif.ParsePrices(rows, a.options()...)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}
	p, ok := cal.PriceOn(on)
	if span := cal.Span(); !ok && span.Contains(on) {
		return fail(subcommands.ExitFailure, "No %s price listed on %s, the market was closed", a.cfg.Ticker, on)
	} else if !ok {
		return fail(subcommands.ExitFailure, "No %s price listed on %s, prices are listed from %s to %s", a.cfg.Ticker, on, span.From, span.To)
	}
	fmt.Fprintf(stdout, "%s\t%s\t%s\n", p.Date, a.cfg.Ticker, a.format().Cash(p.Price))
	return subcommands.ExitSuccess
}
