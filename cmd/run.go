package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type runCmd struct {
	ref string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "trigger a data refresh" }
func (*runCmd) Usage() string {
	return `smon run

  Dispatches the data-refresh workflow on the data repository. Feeds update
  once the workflow completes, typically within a few minutes.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ref, "ref", "main", "Branch to run the workflow on.")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := activeSession()
	if err != nil {
		return fail(err)
	}
	if err := s.DispatchWorkflow(ctx, WorkflowFile, c.ref); err != nil {
		return fail(err)
	}
	fmt.Printf("Refresh started on %s/%s. Feeds update in a few minutes.\n", *owner, *repo)
	return subcommands.ExitSuccess
}
