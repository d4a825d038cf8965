package cmd

import (
	"context"
	"flag"

	"github.com/cli117/stockmon/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	days int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the daily valuation history" }
func (*historyCmd) Usage() string {
	return `smon history [-n <days>]

  Displays the daily portfolio valuation per asset, newest first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "n", 30, "Number of most recent days to show. 0 shows everything.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	h, err := feedClient().FetchHistory()
	if err != nil {
		return fail(err)
	}
	// simple tooltip mode keeps only the date and total columns
	if p, err := loadPrefs(); err == nil && p.SimpleTooltip() {
		h.Assets = nil
	}
	printMarkdown(renderer.HistoryMarkdown(h, c.days, masked()))
	return subcommands.ExitSuccess
}
