package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/invest/agent"
	"github.com/etnz/invest/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type adviseCmd struct {
	requestFlags
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "evaluate a project and ask Gemini to comment it" }
func (*adviseCmd) Usage() string {
	return `advise -rate <percent> -investment <amount> [-years <n>] [--] <cash flow>...

Evaluate a project like 'npv', then ask a Gemini model for a short commentary.
The Gemini API key is read from $GEMINI_API_KEY.
`
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, e, err := c.evaluate(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, message(err))
		return exitStatus(err)
	}
	fmt.Print(renderer.Evaluation(e))

	cfg, err := settings()
	if err != nil {
		fmt.Fprintln(os.Stderr, message(err))
		return subcommands.ExitFailure
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	advice, err := agent.NewAdvisor(client, cfg.Model).Advise(ctx, e, r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	fmt.Println()
	printMarkdown(advice)
	return subcommands.ExitSuccess
}
