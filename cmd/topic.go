package cmd

import (
	"context"
	"flag"

	"github.com/etnz/whatif/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `wif topic [<topic>...]

  Shows the documentation of the given topics, "*" for all of them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail(subcommands.ExitFailure, "Error reading doc: %v", err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// topicNames lists the documentation topics for the shell completion.
func topicNames() []string {
	topics, _ := docs.GetAllTopics()
	return append(topics, "readme", "*")
}
