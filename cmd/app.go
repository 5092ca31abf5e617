// Package cmd implements the CLI application to track personal spending.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/spendtrack"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "entries")
	c.Register(&updateCmd{}, "entries")
	c.Register(&deleteCmd{}, "entries")
	c.Register(&listCmd{}, "entries")

	c.Register(&statsCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&seedCmd{}, "data")
	c.Register(&resetCmd{}, "data")

	c.Register(&settingsCmd{}, "configuration")
}

var log = logrus.New()

// InitConfig loads configuration from the environment (SPENDTRACK_* variables)
// and an optional config.yaml in the data directory. Call it once before
// Execute.
func InitConfig() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)

	viper.SetDefault("data_dir", defaultDataDir())
	viper.SetDefault("seed_url", "")
	viper.SetDefault("verbose", false)

	viper.SetEnvPrefix("SPENDTRACK")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(viper.GetString("data_dir"))
	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file %s", viper.ConfigFileUsed())
	}

	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".spendtrack"
	}
	return filepath.Join(home, ".spendtrack")
}

// openRepository is the composition root: a file store in the configured data
// directory, loaded into a repository.
func openRepository() (*spendtrack.Repository, error) {
	dir := viper.GetString("data_dir")
	log.Debugf("opening repository in %s", dir)
	repo, err := spendtrack.Open(spendtrack.NewFileStore(dir))
	if err != nil {
		return nil, fmt.Errorf("could not open tracker data in %q: %w", dir, err)
	}
	return repo, nil
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// printValidationError lists the failing fields and warnings on stderr.
func printValidationError(verr *spendtrack.ValidationError) {
	fields := make([]string, 0, len(verr.Fields))
	for name := range verr.Fields {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	for _, name := range fields {
		fmt.Fprintf(os.Stderr, "Error: %s: %s\n", name, verr.Fields[name])
	}
	printWarnings(verr.Warnings)
}

// printWarnings lists non-blocking findings on stderr.
func printWarnings(warnings map[string]string) {
	keys := make([]string, 0, len(warnings))
	for k := range warnings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warnings[k])
	}
}
