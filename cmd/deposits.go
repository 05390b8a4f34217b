package cmd

import (
	"context"
	"flag"

	"github.com/etnz/whatif"
	"github.com/etnz/whatif/renderer"
	"github.com/google/subcommands"
)

type depositsCmd struct {
	transactions string
}

func (*depositsCmd) Name() string     { return "deposits" }
func (*depositsCmd) Synopsis() string { return "display the deposits found in the account activity" }
func (*depositsCmd) Usage() string {
	return `wif deposits -t <transactions.csv>

  Displays the counted deposits, and the cancelled, excluded and unrecognized
  transactions left out of the simulation.
`
}

func (c *depositsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.transactions, "t", "", "account activity export (CSV)")
}

func (c *depositsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}
	defer a.Close()

	rows, err := a.readTransactions(c.transactions)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error reading transactions: %v", err)
	}
	txs, err := whatif.ParseTransactions(rows, a.options()...)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}
	printMarkdown(renderer.DepositsMarkdown(whatif.ExtractDeposits(txs, a.options()...), a.format()))
	return subcommands.ExitSuccess
}
