package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spendtrack/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the 7-day spending chart as a PNG" }
func (*chartCmd) Usage() string {
	return `spt chart [-o <file>]

  Renders the spending of the last seven days as a PNG bar chart.

Usage Examples:
$ spt chart -o trend.png

`
}

func (p *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "trend.png", "File to write the PNG chart to.")
}

func (p *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	png, err := renderer.TrendChart(repo.Stats(), repo.Settings())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(p.output, png, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart to %q: %v\n", p.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %s\n", p.output)
	return subcommands.ExitSuccess
}
