package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type hideCmd struct{}

func (*hideCmd) Name() string     { return "hide" }
func (*hideCmd) Synopsis() string { return "mask monetary amounts in reports" }
func (*hideCmd) Usage() string {
	return `smon hide

  Masks every monetary amount in reports. Percentages stay visible. The
  choice is a local preference and persists across runs.
`
}

func (*hideCmd) SetFlags(*flag.FlagSet) {}

func (*hideCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return setVisibility(false)
}

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show monetary amounts in reports" }
func (*showCmd) Usage() string {
	return `smon show

  Shows monetary amounts in reports again after 'smon hide'.
`
}

func (*showCmd) SetFlags(*flag.FlagSet) {}

func (*showCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return setVisibility(true)
}

func setVisibility(visible bool) subcommands.ExitStatus {
	p, err := loadPrefs()
	if err != nil {
		return fail(err)
	}
	p.SetTotalAssetVisible(visible)
	if err := p.Save(); err != nil {
		return fail(err)
	}
	if visible {
		fmt.Println("Amounts are visible.")
	} else {
		fmt.Println("Amounts are hidden.")
	}
	return subcommands.ExitSuccess
}

type tooltipCmd struct{}

func (*tooltipCmd) Name() string     { return "tooltip" }
func (*tooltipCmd) Synopsis() string { return "switch between simple and detailed chart tooltips" }
func (*tooltipCmd) Usage() string {
	return `smon tooltip simple|detailed

  Chooses the chart tooltip style used by the dashboard. The choice is a
  local preference.
`
}

func (*tooltipCmd) SetFlags(*flag.FlagSet) {}

func (c *tooltipCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || (f.Arg(0) != "simple" && f.Arg(0) != "detailed") {
		fmt.Fprintln(os.Stderr, "Error: expected 'simple' or 'detailed'")
		return subcommands.ExitUsageError
	}
	p, err := loadPrefs()
	if err != nil {
		return fail(err)
	}
	p.SetSimpleTooltip(f.Arg(0) == "simple")
	if err := p.Save(); err != nil {
		return fail(err)
	}
	fmt.Printf("Tooltip style is %s.\n", f.Arg(0))
	return subcommands.ExitSuccess
}
