// Package cmd implements the inv command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"

	"github.com/etnz/invest"
	"github.com/etnz/invest/eodhd"
	"github.com/etnz/invest/httpcache"
	"github.com/etnz/invest/yahoo"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&npvCmd{}, "evaluation")
	c.Register(&formCmd{}, "evaluation")
	c.Register(&adviseCmd{}, "evaluation")

	c.Register(&quoteCmd{}, "market")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	Verbose     = flag.Bool("v", false, "log debug traces on stderr")
	configFile  = flag.String("config", defaultConfigFile(), "path to the YAML configuration file")
	provider    = flag.String("provider", "", "quote provider: yahoo or eodhd (default from the configuration, else yahoo)")
	eodhdAPIKey = flag.String("eodhd-api-key", "", "EODHD API key (default from the configuration, else $"+eodhd.APIKeyEnv+")")
	currency    = flag.String("currency", "", "currency of EODHD quotes (default from the configuration, else USD)")
	timeout     = flag.Duration("timeout", 0, "timeout of a quote lookup (default from the configuration, else 10s)")
	cache       = flag.String("cache", "", "HTTP cache: disk, none or redis://host:port (default from the configuration, else disk)")
	model       = flag.String("model", "", "Gemini model of the advise command")
)

// settings returns the configuration file overridden by the global flags.
func settings() (Config, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	cfg.Override(Config{
		Provider:    *provider,
		EODHDAPIKey: *eodhdAPIKey,
		Currency:    *currency,
		Timeout:     *timeout,
		Cache:       *cache,
		Model:       *model,
	})
	return cfg, cfg.Validate()
}

// newLogger returns a development logger on stderr in verbose mode, a no-op
// logger otherwise.
func newLogger() *zap.Logger {
	if !*Verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// newStore returns the HTTP cache store of cfg, nil for none.
func newStore(cfg Config) (httpcache.Store, error) {
	switch cfg.Cache {
	case "none":
		return nil, nil
	case "disk":
		return httpcache.DiskStore{}, nil
	default:
		return httpcache.ParseRedisURL(cfg.Cache)
	}
}

// newProvider returns the quote provider of cfg. The returned closer releases
// the cache store.
func newProvider(cfg Config, log *zap.Logger) (invest.Provider, io.Closer, error) {
	store, err := newStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("cache %q: %w", cfg.Cache, err)
	}
	var closer io.Closer = nopCloser{}
	if c, ok := store.(io.Closer); ok {
		closer = c
	}
	client := httpcache.NewClient(store, log)
	return providerOn(cfg, client, log), closer, nil
}

func providerOn(cfg Config, client *http.Client, log *zap.Logger) invest.Provider {
	if cfg.Provider == "eodhd" {
		p := eodhd.New(cfg.EODHDAPIKey, client, log)
		p.Currency = cfg.Currency
		return p
	}
	return yahoo.New(client, log)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// message formats an error the way it is shown to the user.
func message(err error) string {
	var lookup *invest.LookupError
	if errors.As(err, &lookup) {
		return "Could not fetch stock data: " + err.Error()
	}
	if errors.Is(err, invest.ErrInput) {
		return "Invalid input: " + err.Error()
	}
	return "Error: " + err.Error()
}

// exitStatus is the exit status of a command failing with err.
func exitStatus(err error) subcommands.ExitStatus {
	if errors.Is(err, invest.ErrInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
