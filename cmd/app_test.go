package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/spf13/viper"
)

// run executes one subcommand against a repository in a temporary directory.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return c.Execute(context.Background(), fs)
}

func setupDataDir(t *testing.T) {
	t.Helper()
	viper.Set("data_dir", t.TempDir())
	t.Cleanup(func() { viper.Set("data_dir", "") })
}

func TestAddThenDelete(t *testing.T) {
	setupDataDir(t)

	if status := run(t, &addCmd{}, "-d", "Morning coffee", "-a", "3.50", "-c", "Food"); status != subcommands.ExitSuccess {
		t.Fatalf("add returned %v", status)
	}

	repo, err := openRepository()
	if err != nil {
		t.Fatalf("openRepository() error = %v", err)
	}
	records := repo.List()
	if len(records) != 1 || records[0].Description != "Morning coffee" {
		t.Fatalf("stored records = %v", records)
	}

	// confirmDelete defaults to on, a bare delete must refuse.
	if status := run(t, &deleteCmd{}, "-id", records[0].ID); status != subcommands.ExitUsageError {
		t.Errorf("delete without -force returned %v, want usage error", status)
	}
	if status := run(t, &deleteCmd{}, "-id", records[0].ID, "-force"); status != subcommands.ExitSuccess {
		t.Errorf("forced delete returned %v", status)
	}

	repo, _ = openRepository()
	if repo.Count() != 0 {
		t.Error("entry still present after delete")
	}
}

func TestAddRejectsInvalid(t *testing.T) {
	setupDataDir(t)
	if status := run(t, &addCmd{}, "-d", " bad ", "-a", "nope"); status != subcommands.ExitFailure {
		t.Errorf("add of an invalid entry returned %v, want failure", status)
	}
}

// An unset flag must not become part of the patch.
func TestUpdatePatchesOnlySetFlags(t *testing.T) {
	setupDataDir(t)
	run(t, &addCmd{}, "-d", "Lunch", "-a", "10", "-c", "Food")

	repo, _ := openRepository()
	id := repo.List()[0].ID

	if status := run(t, &updateCmd{}, "-id", id, "-a", "12.50"); status != subcommands.ExitSuccess {
		t.Fatalf("update returned %v", status)
	}

	repo, _ = openRepository()
	got := repo.List()[0]
	if got.Amount.String() != "12.50" {
		t.Errorf("Amount = %s, want 12.50", got.Amount)
	}
	if got.Description != "Lunch" || got.Category != "Food" {
		t.Errorf("unpatched fields changed: %+v", got)
	}
}
