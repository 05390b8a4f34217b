package cmd

import (
	"context"
	"flag"

	"github.com/etnz/whatif"
	"github.com/etnz/whatif/renderer"
	"github.com/google/subcommands"
)

type timelineCmd struct {
	transactions string
	prices       string
	today        string
	purchases    bool
	jsonl        bool
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "display the simulated proxy position day by day" }
func (*timelineCmd) Usage() string {
	return `wif timeline -t <transactions.csv> -p <prices> [-today <date>] [-purchases] [-jsonl]

  Displays the proxy position on every trading day since the first deposit.
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transactions, "t", "", "account activity export (CSV)")
	f.StringVar(&c.prices, "p", "", "proxy price history (CSV or JSON, see the configuration)")
	f.StringVar(&c.today, "today", "", "last day of the simulation (defaults to today)")
	f.BoolVar(&c.purchases, "purchases", false, "only display the days shares were bought")
	f.BoolVar(&c.jsonl, "jsonl", false, "print one JSON object per day instead of a report")
}

func (c *timelineCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today, err := parseDate("today", c.today)
	if err != nil {
		return fail(subcommands.ExitUsageError, "Error: %v", err)
	}
	a, err := newApp()
	if err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}
	defer a.Close()
	opts := a.options(whatif.WithToday(today))

	rows, err := a.readTransactions(c.transactions)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error reading transactions: %v", err)
	}
	txs, err := whatif.ParseTransactions(rows, opts...)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}
	report := whatif.ExtractDeposits(txs, opts...)

	if rows, err = a.readPrices(ctx, c.prices); err != nil {
		return fail(subcommands.ExitFailure, "Error reading prices: %v", err)
	}
	cal, err := whatif.ParsePrices(rows, opts...)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}

	tl, err := whatif.BuildTimeline(report.Deposits, cal, opts...)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}

	if c.jsonl {
		points := tl.Points
		if c.purchases {
			points = tl.Purchases()
		}
		if err := whatif.EncodeTimeline(stdout, points); err != nil {
			return fail(subcommands.ExitFailure, "Error: %v", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.TimelineMarkdown(tl, c.purchases, a.format()))
	return subcommands.ExitSuccess
}
