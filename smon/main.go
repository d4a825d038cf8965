// Command smon is a terminal dashboard for a stock portfolio: it reads the
// data products published by the data repository, edits its configuration
// file, and triggers refresh runs.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/cli117/stockmon/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands fall through to smon-<name> extensions.
	if args := flag.Args(); len(args) > 0 && !cmd.Known(args[0]) {
		if ran, code := cmd.RunExtension(args[0], args[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and exits when one is made.
func completion() {
	days := complete.Command{Flags: map[string]complete.Predictor{"n": predict.Something}}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"login":  {Flags: map[string]complete.Predictor{"t": predict.Something}},
			"logout": {},
			"run":    {Flags: map[string]complete.Predictor{"ref": predict.Something}},

			"summary":    {},
			"history":    &days,
			"feargreed":  &days,
			"indicators": {},

			"config": {Flags: map[string]complete.Predictor{
				"p": predict.Set{"positions", "settings", "all"},
			}},
			"set": {},
			"set-option": {Flags: map[string]complete.Predictor{
				"u": predict.Something,
				"e": predict.Something,
				"k": predict.Something,
				"t": predict.Set{"CALL", "PUT"},
				"q": predict.Something,
			}},

			"hide":    {},
			"show":    {},
			"tooltip": {Args: predict.Set{"simple", "detailed"}},

			"topic":  {},
			"assist": {},
		},
		Flags: map[string]complete.Predictor{
			"owner": predict.Something,
			"repo":  predict.Something,
			"v":     predict.Nothing,
		},
	}
	c.Complete("smon")
}
