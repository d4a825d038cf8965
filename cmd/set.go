package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cli117/stockmon"
	"github.com/google/subcommands"
)

type setCmd struct{}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set one configuration value" }
func (*setCmd) Usage() string {
	return `smon set <section> <key> <value>

  Sets one key in the remote configuration and writes it back. An existing
  key is rewritten in place, keeping its comment; a new key is appended to
  its section.

Usage Examples:
# Set a holding.
$ smon set Portfolio AAPL 12

# Change a setting.
$ smon set Settings data_source 2
`
}

func (*setCmd) SetFlags(*flag.FlagSet) {}

func (c *setCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <section> <key> <value>")
		return subcommands.ExitUsageError
	}
	section, key, value := f.Arg(0), f.Arg(1), f.Arg(2)
	if stockmon.SchemaOf(section).Strategy == stockmon.StrategyReserved {
		fmt.Fprintf(os.Stderr, "Error: section %q is reserved\n", section)
		return subcommands.ExitUsageError
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
	es, ok := session.Section(section)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no section %q in %s\n", section, ConfigPath)
		return subcommands.ExitUsageError
	}
	es.Set(key, value)

	message := fmt.Sprintf("Set %s.%s = %s", section, key, value)
	if err := saveConfig(ctx, s, file, doc, session.Flatten(), message); err != nil {
		return fail(err)
	}

	fmt.Printf("Saved %s.\n", ConfigPath)
	return subcommands.ExitSuccess
}
