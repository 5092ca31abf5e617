package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/spendtrack"
	"github.com/etnz/spendtrack/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	search    string
	matchCase bool
	sortKey   string
	category  string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list entries, with optional search and sorting" }
func (*listCmd) Usage() string {
	return `spt list [-search <pattern>] [-sort <key>] [-category <name>]

  Lists entries, newest first by default. The search pattern is a regular
  expression matched against description, category, date and amount; a
  pattern that does not compile is taken literally. Sort keys are date,
  description, amount and category, with an optional -asc or -desc suffix.

Usage Examples:
$ spt list -search coffee
$ spt list -sort amount-desc -category Food

`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.search, "search", "", "Pattern to filter entries by.")
	f.BoolVar(&p.matchCase, "match-case", false, "Make the search case sensitive.")
	f.StringVar(&p.sortKey, "sort", "date", "Sort key: date, description, amount or category, with optional -asc/-desc.")
	f.StringVar(&p.category, "category", "", "Keep only entries of this category.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	records := repo.List()
	records = spendtrack.Filter(records, p.search, !p.matchCase)
	if p.category != "" {
		kept := records[:0]
		for _, r := range records {
			if strings.EqualFold(r.Category, p.category) {
				kept = append(kept, r)
			}
		}
		records = kept
	}
	field, ascending := spendtrack.ParseSortKey(p.sortKey)
	records = spendtrack.SortRecords(records, field, ascending)

	printMarkdown(renderer.Records(records, repo.Settings()))
	return subcommands.ExitSuccess
}
