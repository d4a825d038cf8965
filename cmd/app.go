// Package cmd implements the CLI application to monitor a stock portfolio.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cli117/stockmon"
	"github.com/cli117/stockmon/feed"
	"github.com/cli117/stockmon/gh"
	"github.com/google/subcommands"
)

// ConfigPath is the path of the configuration file in the data repository.
const ConfigPath = "config.ini"

// WorkflowFile is the data-refresh workflow dispatched by the run command.
const WorkflowFile = "run_script.yml"

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")
	c.Register(&runCmd{}, "session")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&feargreedCmd{}, "reports")
	c.Register(&indicatorsCmd{}, "reports")

	c.Register(&configCmd{}, "configuration")
	c.Register(&setCmd{}, "configuration")
	c.Register(&setOptionCmd{}, "configuration")

	c.Register(&hideCmd{}, "display")
	c.Register(&showCmd{}, "display")
	c.Register(&tooltipCmd{}, "display")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")

	for _, name := range []string{
		"login", "logout", "run",
		"summary", "history", "feargreed", "indicators",
		"config", "set", "set-option",
		"hide", "show", "tooltip",
		"topic", "assist",
	} {
		commandNames[name] = true
	}
}

var commandNames = map[string]bool{}

// Known reports whether name is a built-in subcommand.
func Known(name string) bool { return commandNames[name] }

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var owner = flag.String("owner", "cli117", "Owner of the data repository")
var repo = flag.String("repo", "stock_monitor", "Name of the data repository")
var Verbose = flag.Bool("v", false, "Verbose logging")

// activeSession returns the remote session for the configured repository.
func activeSession() (*gh.Session, error) {
	return gh.LoadSession(*owner, *repo)
}

// feedClient returns the feed client for the configured repository.
func feedClient() *feed.Client {
	return feed.NewClient(*owner, *repo)
}

// loadPrefs loads the local display preferences.
func loadPrefs() (*stockmon.Prefs, error) {
	return stockmon.LoadPrefs(stockmon.DefaultPrefsDir())
}

// masked reports whether monetary amounts are hidden. A preference that
// cannot be read never blocks a report.
func masked() bool {
	p, err := loadPrefs()
	if err != nil {
		return false
	}
	return !p.TotalAssetVisible()
}

// fetchConfig reads and parses the remote configuration file.
func fetchConfig(ctx context.Context, s *gh.Session) (*gh.RemoteFile, *stockmon.ConfigDocument, error) {
	file, err := s.GetFile(ctx, ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot fetch %s: %w", ConfigPath, err)
	}
	return file, stockmon.ParseConfig(string(file.Content)), nil
}

// saveConfig reserializes the document with the given edits and writes it
// back, guarded by the SHA of the fetched file.
func saveConfig(ctx context.Context, s *gh.Session, file *gh.RemoteFile, doc *stockmon.ConfigDocument, edits *stockmon.EditMap, message string) error {
	content := doc.Reserialize(edits)
	if _, err := s.PutFile(ctx, ConfigPath, []byte(content), message, file.SHA); err != nil {
		return fmt.Errorf("cannot save %s: %w", ConfigPath, err)
	}
	return nil
}

// fail prints an error and converts it to an exit status. An authentication
// failure discards the stored token so the next login starts clean.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, gh.ErrAuth) {
		gh.ClearToken()
		fmt.Fprintln(os.Stderr, "Stored credential discarded, run 'smon login' again.")
	}
	return subcommands.ExitFailure
}
