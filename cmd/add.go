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

// similarDistance is the maximum edit distance for the duplicate-entry hint.
const similarDistance = 3

type addCmd struct {
	description string
	amount      string
	category    string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new spending entry" }
func (*addCmd) Usage() string {
	return `spt add -d <description> -a <amount> [-c <category>] [-on <date>]

  Validates and records one spending entry. The amount takes up to two
  decimal places, the date defaults to today and cannot be in the future.

Usage Examples:
$ spt add -d "Morning coffee" -a 3.50 -c Food
$ spt add -d "Train ticket" -a 12 -c Transport -on 2026-08-27

`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.description, "d", "", "Description of the entry.")
	f.StringVar(&p.amount, "a", "", "Amount spent, up to two decimal places.")
	f.StringVar(&p.category, "c", "Other", "Spending category.")
	f.StringVar(&p.date, "on", "", "Date of the entry (YYYY-MM-DD, defaults to today).")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	date := p.date
	if date == "" {
		date = repo.Today().String()
	}
	fields := spendtrack.Fields{
		Description: p.description,
		Amount:      p.amount,
		Category:    p.category,
		Date:        date,
	}

	similar := repo.FindSimilar(p.description, similarDistance)

	rec, err := repo.Add(fields)
	var verr *spendtrack.ValidationError
	var perr *spendtrack.PersistenceError
	switch {
	case errors.As(err, &verr):
		printValidationError(verr)
		return subcommands.ExitFailure
	case errors.As(err, &perr):
		// The entry is recorded in memory but the write failed.
		log.Warnf("could not save: %v", perr)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printWarnings(spendtrack.AdvisoryFindings(fields))
	for _, s := range similar {
		fmt.Fprintf(os.Stderr, "Note: looks like an existing entry: %s\n", renderer.Entry(s))
	}
	fmt.Printf("Added %s [%s]\n", renderer.Entry(rec), rec.ID)
	return subcommands.ExitSuccess
}
