package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cli117/stockmon/gh"
	"github.com/google/subcommands"
)

type loginCmd struct {
	token string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "store a GitHub token for the data repository" }
func (*loginCmd) Usage() string {
	return `smon login [-t <token>]

  Validates a GitHub personal access token against the data repository and
  stores it for later commands. Without -t the token is read from stdin.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.token, "t", "", "Personal access token. Read from stdin when empty.")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	token := strings.TrimSpace(c.token)
	if token == "" {
		fmt.Print("Paste your GitHub token: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fail(err)
		}
		token = strings.TrimSpace(line)
	}
	if token == "" {
		fmt.Fprintln(os.Stderr, "Error: empty token")
		return subcommands.ExitUsageError
	}

	s := gh.NewSession(*owner, *repo, token)
	if err := s.Validate(ctx, ConfigPath); err != nil {
		return fail(fmt.Errorf("token rejected by %s/%s: %w", *owner, *repo, err))
	}
	if err := gh.SaveToken(token); err != nil {
		return fail(err)
	}

	fmt.Printf("Logged in to %s/%s.\n", *owner, *repo)
	return subcommands.ExitSuccess
}
