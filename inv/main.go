package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/invest/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	cmd.Register(commander)

	// exits if invoked by the shell for completion.
	cmd.Completion(commander, flag.CommandLine).Complete(name)

	flag.Parse()

	if sub := flag.Arg(0); sub != "" && !cmd.IsRegistered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
