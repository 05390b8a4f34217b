package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/whatif/config"
	"github.com/google/subcommands"
)

type configInitCmd struct {
	output string
}

func (*configInitCmd) Name() string     { return "config-init" }
func (*configInitCmd) Synopsis() string { return "create a documented configuration file" }
func (*configInitCmd) Usage() string {
	return `wif config-init [-o <file>]

  Writes the default configuration, with comments, to a new file.
`
}

func (c *configInitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", config.DefaultFileName, "configuration file to create")
}

func (c *configInitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := config.InitConfig(c.output); err != nil {
		return fail(subcommands.ExitFailure, "Error: %v", err)
	}
	fmt.Fprintf(stdout, "Configuration written to %s\n", c.output)
	return subcommands.ExitSuccess
}
