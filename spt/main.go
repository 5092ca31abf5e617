package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/spendtrack/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.InitConfig()
	os.Exit(int(commander.Execute(context.Background())))
}
