package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cli117/stockmon"
	"github.com/google/subcommands"
)

type setOptionCmd struct {
	underlying string
	expiry     string
	strike     string
	typ        string
	quantity   string
}

func (*setOptionCmd) Name() string     { return "set-option" }
func (*setOptionCmd) Synopsis() string { return "set the quantity of one option contract" }
func (*setOptionCmd) Usage() string {
	return `smon set-option -u <underlying> -e <expiry> -k <strike> [-t CALL|PUT] -q <quantity>

  Sets the quantity of one option contract in the remote configuration. The
  contract is matched on underlying, expiry, strike and type; a new contract
  is appended to the OptionsPortfolio section.

Usage Examples:
# Ten AAPL June 2025 150 calls.
$ smon set-option -u AAPL -e 2025-06-20 -k 150 -q 10

# Short two puts.
$ smon set-option -u NVDA -e 2025-09-19 -k 100 -t PUT -q -2
`
}

func (c *setOptionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.underlying, "u", "", "Underlying ticker.")
	f.StringVar(&c.expiry, "e", "", "Expiry date, YYYY-MM-DD.")
	f.StringVar(&c.strike, "k", "", "Strike price.")
	f.StringVar(&c.typ, "t", string(stockmon.Call), "Contract type, CALL or PUT.")
	f.StringVar(&c.quantity, "q", "", "Signed quantity of contracts.")
}

func (c *setOptionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.underlying == "" || c.expiry == "" || c.strike == "" || c.quantity == "" {
		fmt.Fprintln(os.Stderr, "Error: -u, -e, -k and -q are required")
		return subcommands.ExitUsageError
	}
	typ := stockmon.OptionType(strings.ToUpper(strings.TrimSpace(c.typ)))
	if typ != stockmon.Call && typ != stockmon.Put {
		fmt.Fprintf(os.Stderr, "Error: invalid contract type %q\n", c.typ)
		return subcommands.ExitUsageError
	}
	if _, err := stockmon.ParseDate(c.expiry); err != nil {
		return fail(fmt.Errorf("invalid expiry: %w", err))
	}

	s, err := activeSession()
	if err != nil {
		return fail(err)
	}
	file, doc, err := fetchConfig(ctx, s)
	if err != nil {
		return fail(err)
	}

	session := stockmon.NewEditSession(doc)
	es, ok := session.Section("OptionsPortfolio")
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no OptionsPortfolio section in %s\n", ConfigPath)
		return subcommands.ExitFailure
	}
	es.SetOption(c.underlying, c.expiry, c.strike, typ, c.quantity)

	message := fmt.Sprintf("Set option %s_%s_%s_%s = %s",
		strings.ToUpper(c.underlying), c.expiry, c.strike, typ, c.quantity)
	if err := saveConfig(ctx, s, file, doc, session.Flatten(), message); err != nil {
		return fail(err)
	}

	fmt.Printf("Saved %s.\n", ConfigPath)
	return subcommands.ExitSuccess
}
