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

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace all entries with an exported JSON document" }
func (*importCmd) Usage() string {
	return `spt import -i <file>

  Replaces the current entries with the ones of an exported document.
  Entries missing an id, description or amount are skipped; the document
  must carry its transactions as a JSON list.

`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "i", "", "File to read the exported document from.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(p.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", p.input, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	imported, dropped, err := repo.Import(file)
	var ierr *spendtrack.ImportError
	if errors.As(err, &ierr) {
		fmt.Fprintf(os.Stderr, "Error: cannot import %q: %v\n", p.input, ierr)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if dropped > 0 {
		log.Warnf("skipped %d malformed entries", dropped)
	}
	fmt.Printf("Imported %d entries from %s\n", imported, p.input)
	return subcommands.ExitSuccess
}
