package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/invest"
	"github.com/etnz/invest/renderer"
	"github.com/google/subcommands"
)

// requestFlags are the flags describing a request on the command line, the
// yearly cash flows being the arguments.
type requestFlags struct {
	rate       string
	investment string
	years      int
}

func (c *requestFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rate, "rate", "", "discount rate in percent, e.g. 8 for 8%")
	f.StringVar(&c.investment, "investment", "", "initial investment, usually negative")
	f.IntVar(&c.years, "years", -1, "number of years, checked against the number of cash flows if set")
}

// request parses the flags and the cash flows.
func (c *requestFlags) request(flows []string) (invest.Request, error) {
	years := c.years
	if years < 0 {
		years = len(flows)
	}
	form := invest.Form{
		Rate:       c.rate,
		Investment: c.investment,
		Years:      strconv.Itoa(years),
		Flows:      flows,
	}
	return form.Request()
}

// evaluate parses and evaluates the request given on the command line.
func (c *requestFlags) evaluate(f *flag.FlagSet) (invest.Request, invest.Evaluation, error) {
	r, err := c.request(f.Args())
	if err != nil {
		return r, invest.Evaluation{}, err
	}
	e, err := invest.Evaluate(r)
	return r, e, err
}

type npvCmd struct {
	requestFlags
	schedule bool
}

func (*npvCmd) Name() string     { return "npv" }
func (*npvCmd) Synopsis() string { return "evaluate the NPV and IRR of a series of cash flows" }
func (*npvCmd) Usage() string {
	return `npv -rate <percent> -investment <amount> [-years <n>] [-schedule] [--] <cash flow>...

Evaluate a project: compute its Net Present Value at the discount rate, its
Internal Rate of Return, and whether it should be accepted.

Use '--' before the cash flows if the first one is negative.
`
}

func (c *npvCmd) SetFlags(f *flag.FlagSet) {
	c.requestFlags.SetFlags(f)
	f.BoolVar(&c.schedule, "schedule", false, "also show the discounted cash flow schedule")
}

func (c *npvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, e, err := c.evaluate(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, message(err))
		return exitStatus(err)
	}
	fmt.Print(renderer.Evaluation(e))
	if c.schedule {
		fmt.Println()
		printMarkdown(renderer.Schedule(r))
	}
	return subcommands.ExitSuccess
}
