package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cli117/stockmon"
	"github.com/cli117/stockmon/renderer"
	"github.com/google/subcommands"
)

type configCmd struct {
	panel string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "display the portfolio configuration" }
func (*configCmd) Usage() string {
	return `smon config [-p positions|settings|all]

  Displays the remote configuration: positions (holdings, option contracts,
  cash) and settings. Reserved sections are never shown.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.panel, "p", "all", "Panel to show: positions, settings or all.")
}

func (c *configCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := activeSession()
	if err != nil {
		return fail(err)
	}
	_, doc, err := fetchConfig(ctx, s)
	if err != nil {
		return fail(err)
	}
	session := stockmon.NewEditSession(doc)

	switch c.panel {
	case "positions":
		printMarkdown(renderer.ConfigMarkdown("Positions", session.Panel(stockmon.PanelPositions)))
	case "settings":
		printMarkdown(renderer.ConfigMarkdown("Settings", session.Panel(stockmon.PanelSettings)))
	case "all":
		printMarkdown(renderer.ConfigMarkdown("Positions", session.Panel(stockmon.PanelPositions)))
		printMarkdown(renderer.ConfigMarkdown("Settings", session.Panel(stockmon.PanelSettings)))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown panel %q\n", c.panel)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
