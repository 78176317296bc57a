package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/etnz/invest"
	"github.com/etnz/invest/renderer"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

// maxLookups is the number of quotes looked up concurrently.
const maxLookups = 4

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "show the latest close price of stocks" }
func (*quoteCmd) Usage() string {
	return `quote <ticker>...

Show the latest daily close price of each stock from the configured provider
(Yahoo Finance by default).
`
}

func (*quoteCmd) SetFlags(*flag.FlagSet) {}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	tickers := f.Args()
	if len(tickers) == 0 {
		tickers = []string{""} // reported as a missing ticker
	}
	if err := printQuotes(ctx, os.Stdout, os.Stderr, p, cfg.Timeout, tickers); err != nil {
		return exitStatus(err)
	}
	return subcommands.ExitSuccess
}

// printQuotes looks up tickers concurrently and prints their quotes in order
// on w, and the failed lookups on werr. It returns the first error.
func printQuotes(ctx context.Context, w, werr io.Writer, p invest.Provider, timeout time.Duration, tickers []string) error {
	quotes := make([]invest.Quote, len(tickers))
	errs := make([]error, len(tickers))

	var g errgroup.Group
	g.SetLimit(maxLookups)
	for i, ticker := range tickers {
		g.Go(func() error {
			ctx, cancel := lookupContext(ctx, timeout)
			defer cancel()
			quotes[i], errs[i] = p.LatestClose(ctx, ticker)
			return nil
		})
	}
	g.Wait()

	var first error
	for i := range tickers {
		if errs[i] != nil {
			fmt.Fprintln(werr, message(errs[i]))
			if first == nil {
				first = errs[i]
			}
			continue
		}
		fmt.Fprint(w, renderer.Quote(quotes[i]))
	}
	return first
}

// lookupContext bounds a lookup by timeout. A zero or negative timeout means
// no timeout.
func lookupContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
