package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/cli117/stockmon/gh"
	"github.com/google/subcommands"
)

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "forget the stored GitHub token" }
func (*logoutCmd) Usage() string {
	return `smon logout

  Forgets the stored GitHub token. Logging out twice is fine.
`
}

func (*logoutCmd) SetFlags(*flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := gh.ClearToken(); err != nil {
		return fail(err)
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}
