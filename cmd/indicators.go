package cmd

import (
	"context"
	"flag"

	"github.com/cli117/stockmon/renderer"
	"github.com/google/subcommands"
)

type indicatorsCmd struct{}

func (*indicatorsCmd) Name() string     { return "indicators" }
func (*indicatorsCmd) Synopsis() string { return "display macro-economic indicators" }
func (*indicatorsCmd) Usage() string {
	return `smon indicators

  Displays the latest macro-economic readings: CPI, PCE, unemployment,
  consumer sentiment and the Fed balance sheet.
`
}

func (*indicatorsCmd) SetFlags(*flag.FlagSet) {}

func (c *indicatorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ind, err := feedClient().FetchIndicators()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.IndicatorsMarkdown(ind))
	return subcommands.ExitSuccess
}
