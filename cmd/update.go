package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spendtrack"
	"github.com/etnz/spendtrack/renderer"
	"github.com/google/subcommands"
)

type updateCmd struct {
	id          string
	description string
	amount      string
	category    string
	date        string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "edit fields of an existing entry" }
func (*updateCmd) Usage() string {
	return `spt update -id <id> [-d <description>] [-a <amount>] [-c <category>] [-on <date>]

  Edits one entry in place. Only the flags given change, the others keep
  their current value. The edited entry is validated as a whole before
  anything is stored.

Usage Examples:
$ spt update -id rec_1756112000000_a1b2c3d4 -a 4.20

`
}

func (p *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the entry to edit.")
	f.StringVar(&p.description, "d", "", "New description.")
	f.StringVar(&p.amount, "a", "", "New amount.")
	f.StringVar(&p.category, "c", "", "New category.")
	f.StringVar(&p.date, "on", "", "New date (YYYY-MM-DD).")
}

func (p *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	// Only flags the user actually set become part of the patch, so an empty
	// value can never silently wipe a field.
	var patch spendtrack.Patch
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			patch.Description = &p.description
		case "a":
			patch.Amount = &p.amount
		case "c":
			patch.Category = &p.category
		case "on":
			patch.Date = &p.date
		}
	})

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rec, err := repo.Update(p.id, patch)
	var verr *spendtrack.ValidationError
	var perr *spendtrack.PersistenceError
	switch {
	case errors.Is(err, spendtrack.ErrNotFound):
		fmt.Fprintf(os.Stderr, "Error: no entry with id %q\n", p.id)
		return subcommands.ExitFailure
	case errors.As(err, &verr):
		printValidationError(verr)
		return subcommands.ExitFailure
	case errors.As(err, &perr):
		log.Warnf("could not save: %v", perr)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %s\n", renderer.Entry(rec))
	return subcommands.ExitSuccess
}
