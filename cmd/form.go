package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type formCmd struct {
	offline bool
}

func (*formCmd) Name() string     { return "form" }
func (*formCmd) Synopsis() string { return "evaluate a project interactively" }
func (*formCmd) Usage() string {
	return `form [-offline]

Start an interactive session: enter the discount rate, the initial investment,
the number of years and each year's cash flow, then get the NPV and IRR.
Fields can be changed and evaluated again, type 'help' in the session.
`
}

func (c *formCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "disable the quote command")
}

func (c *formCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := NewSession(os.Stdout, os.Stdin, nil, 0)

	if !c.offline {
		cfg, err := settings()
		if err != nil {
			fmt.Fprintln(os.Stderr, message(err))
			return subcommands.ExitFailure
		}
		p, closer, err := newProvider(cfg, newLogger())
		if err != nil {
			fmt.Fprintln(os.Stderr, message(err))
			return subcommands.ExitFailure
		}
		defer closer.Close()
		s.Provider, s.Timeout = p, cfg.Timeout
	}

	if err := s.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Session failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
