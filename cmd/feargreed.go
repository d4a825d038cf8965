package cmd

import (
	"context"
	"flag"

	"github.com/cli117/stockmon/renderer"
	"github.com/google/subcommands"
)

type feargreedCmd struct {
	days int
}

func (*feargreedCmd) Name() string     { return "feargreed" }
func (*feargreedCmd) Synopsis() string { return "display the fear & greed index" }
func (*feargreedCmd) Usage() string {
	return `smon feargreed [-n <days>]

  Displays the CNN fear & greed index, its components and recent history.
`
}

func (c *feargreedCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "n", 7, "Number of most recent days of history to show.")
}

func (c *feargreedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fg, err := feedClient().FetchFearGreed()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.FearGreedMarkdown(fg, c.days))
	return subcommands.ExitSuccess
}
