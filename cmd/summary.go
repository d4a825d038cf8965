package cmd

import (
	"context"
	"flag"

	"github.com/cli117/stockmon/agent"
	"github.com/cli117/stockmon/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary" }
func (*summaryCmd) Usage() string {
	return `smon summary

  Displays the current portfolio value, allocation, per-period returns and
  market sentiment, from the latest published data.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := agent.BuildSummary(feedClient(), masked())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.SummaryMarkdown(s))
	return subcommands.ExitSuccess
}
