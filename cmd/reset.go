package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete all entries and restore default settings" }
func (*resetCmd) Usage() string {
	return `spt reset -force

  Deletes every entry and restores the default settings. Display
  preferences are kept. Requires -force.

`
}

func (p *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "force", false, "Confirm the reset.")
}

func (p *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force {
		fmt.Fprintln(os.Stderr, "Error: reset deletes everything, run again with -force")
		return subcommands.ExitUsageError
	}
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	count := repo.Count()
	if err := repo.Reset(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %d entries.\n", count)
	return subcommands.ExitSuccess
}
