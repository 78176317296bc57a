package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// argsPredictor is implemented by commands that can complete their arguments.
type argsPredictor interface {
	PredictArgs() complete.Predictor
}

// Completion describes the command line of the commander for shell
// completion: its global flags in top, and every registered subcommand with
// its own flags.
func Completion(c *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(top),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		sub := &complete.Command{Flags: flagPredictors(f)}
		if p, ok := cmd.(argsPredictor); ok {
			sub.Args = p.PredictArgs()
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// flagPredictors predicts nothing after a boolean flag, something otherwise.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}

// IsRegistered reports whether name is a subcommand of the commander.
func IsRegistered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
