package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/spf13/viper"
)

type seedCmd struct {
	url     string
	timeout time.Duration
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "load starter entries from a seed endpoint" }
func (*seedCmd) Usage() string {
	return `spt seed [-url <endpoint>] [-timeout <duration>]

  Downloads starter entries and adds the valid ones, only when no entries
  exist yet. The endpoint defaults to the seed_url configuration value.

`
}

func (p *seedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.url, "url", "", "Seed endpoint serving a JSON list of entries.")
	f.DurationVar(&p.timeout, "timeout", 10*time.Second, "How long to wait for the endpoint.")
}

func (p *seedCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	addr := p.url
	if addr == "" {
		addr = viper.GetString("seed_url")
	}
	if addr == "" {
		fmt.Fprintln(os.Stderr, "Error: no seed endpoint, give -url or set SPENDTRACK_SEED_URL")
		return subcommands.ExitUsageError
	}

	repo, err := openRepository()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if repo.Count() > 0 {
		fmt.Println("Entries already exist, nothing seeded.")
		return subcommands.ExitSuccess
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	added, err := repo.SeedIfEmpty(ctx, http.DefaultClient, addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Seeded %d entries from %s\n", added, addr)
	return subcommands.ExitSuccess
}
