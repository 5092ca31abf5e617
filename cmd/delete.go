package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spendtrack"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id    string
	force bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove an entry" }
func (*deleteCmd) Usage() string {
	return `spt delete -id <id> [-force]

  Removes one entry. Deleting an unknown id is reported but changes
  nothing. With the confirmDelete preference on (the default), -force is
  required.

`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the entry to remove.")
	f.BoolVar(&p.force, "force", false, "Delete without confirmation.")
}

func (p *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if repo.Preferences().ConfirmDelete && !p.force {
		fmt.Fprintln(os.Stderr, "Error: confirmDelete is on, run again with -force")
		return subcommands.ExitUsageError
	}
	removed, err := repo.Delete(p.id)
	var perr *spendtrack.PersistenceError
	if errors.As(err, &perr) {
		log.Warnf("could not save: %v", perr)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !removed {
		fmt.Fprintf(os.Stderr, "Error: no entry with id %q\n", p.id)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %s\n", p.id)
	return subcommands.ExitSuccess
}
