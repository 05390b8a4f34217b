// Command wif compares a brokerage account with a single index fund bought
// with the same deposits.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/whatif/cmd"
	"github.com/google/subcommands"
)

func main() {
	// answers the shell completion requests, see COMP_INSTALL=1 wif.
	cmd.Completion().Complete("wif")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
