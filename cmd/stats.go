package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spendtrack/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "show the spending dashboard" }
func (*statsCmd) Usage() string {
	return `spt stats

  Shows totals, per-category breakdown, budget position and the spending
  of the last seven days.

`
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (p *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Dashboard(repo.Stats(), repo.Settings()))
	return subcommands.ExitSuccess
}
