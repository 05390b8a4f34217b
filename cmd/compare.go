package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/whatif"
	"github.com/etnz/whatif/renderer"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type compareCmd struct {
	transactions string
	prices       string
	value        string
	asOf         string
	today        string
	html         bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the portfolio with the proxy index fund" }
func (*compareCmd) Usage() string {
	return `wif compare -t <transactions.csv> -p <prices> -v <value> [-asof <date>] [-today <date>] [-html]

  Simulates buying the proxy index fund with every cash deposit and compares
  its value with the reported value of the portfolio.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transactions, "t", "", "account activity export (CSV)")
	f.StringVar(&c.prices, "p", "", "proxy price history (CSV or JSON, see the configuration)")
	f.StringVar(&c.value, "v", "", "current value of the portfolio, like $12,345.67")
	f.StringVar(&c.asOf, "asof", "", "date of the portfolio value, it must be a trading day (defaults to the last trading day)")
	f.StringVar(&c.today, "today", "", "last day of the simulation (defaults to today)")
	f.BoolVar(&c.html, "html", false, "print the report as HTML")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	value, ok, err := whatif.ParseCurrency(c.value)
	if err != nil || !ok {
		return fail(subcommands.ExitUsageError, "Error: -v must be the current value of the portfolio, got %q", c.value)
	}
	asOf, err := parseDate("asof", c.asOf)
	if err != nil {
		return fail(subcommands.ExitUsageError, "Error: %v", err)
	}
	today, err := parseDate("today", c.today)
	if err != nil {
		return fail(subcommands.ExitUsageError, "Error: %v", err)
	}

	a, err := newApp()
	if err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}
	defer a.Close()

	in := whatif.Input{CurrentValue: value}
	if in.Transactions, err = a.readTransactions(c.transactions); err != nil {
		return fail(subcommands.ExitFailure, "Error reading transactions: %v", err)
	}
	if in.Prices, err = a.readPrices(ctx, c.prices); err != nil {
		return fail(subcommands.ExitFailure, "Error reading prices: %v", err)
	}

	analysis, err := whatif.Analyze(in, a.options(whatif.WithToday(today), whatif.WithAsOf(asOf))...)
	var derr *whatif.DomainError
	if errors.As(err, &derr) && analysis != nil {
		// the timeline is still worth showing.
		printMarkdown(renderer.TimelineMarkdown(analysis.Timeline, true, a.format()))
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}
	if err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}

	md := renderer.ComparisonMarkdown(analysis.Comparison, a.format())
	if c.html {
		var buf bytes.Buffer
		if err := goldmark.New(goldmark.WithExtensions(extension.Table)).Convert([]byte(md), &buf); err != nil {
			return fail(subcommands.ExitFailure, "Error rendering HTML: %v", err)
		}
		fmt.Fprint(stdout, buf.String())
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
