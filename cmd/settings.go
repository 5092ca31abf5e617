package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spendtrack"
	"github.com/google/subcommands"
)

type settingsCmd struct {
	cap      string
	currency string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change budget cap and currency" }
func (*settingsCmd) Usage() string {
	return `spt settings [-cap <amount>] [-currency <code>]

  Without flags, shows the current settings. With flags, changes them: a
  cap of 0 disables the budget, the currency is an ISO code like USD or
  EUR.

Usage Examples:
$ spt settings
$ spt settings -cap 500 -currency EUR

`
}

func (p *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.cap, "cap", "", "Monthly budget cap, 0 to disable.")
	f.StringVar(&p.currency, "currency", "", "ISO currency code for display.")
}

func (p *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	settings := repo.Settings()

	if p.cap == "" && p.currency == "" {
		cap := "disabled"
		if !settings.BudgetCap.IsZero() {
			cap = settings.BudgetCap.FormatIn(settings.Currency)
		}
		fmt.Printf("Budget cap: %s\nCurrency:   %s\n", cap, settings.Currency)
		return subcommands.ExitSuccess
	}

	if p.cap != "" {
		amount, err := spendtrack.ParseAmount(p.cap)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		settings.BudgetCap = amount
	}
	if p.currency != "" {
		settings.Currency = p.currency
	}
	if err := repo.UpdateSettings(settings); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Settings updated.")
	return subcommands.ExitSuccess
}
