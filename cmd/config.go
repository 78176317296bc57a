package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/invest/agent"
	"github.com/etnz/invest/eodhd"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of inv. They come from defaults, then the YAML
// configuration file, then the command line flags.
type Config struct {
	Provider    string        `yaml:"provider"` // yahoo or eodhd
	EODHDAPIKey string        `yaml:"eodhd_api_key"`
	Currency    string        `yaml:"currency"` // currency of eodhd quotes
	Timeout     time.Duration `yaml:"timeout"`
	Cache       string        `yaml:"cache"` // disk, none or a redis:// URL
	Model       string        `yaml:"model"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Provider: "yahoo",
		Currency: "USD",
		Timeout:  10 * time.Second,
		Cache:    "disk",
		Model:    agent.DefaultModel,
	}
}

// defaultConfigFile is ~/.inv.yaml, or .inv.yaml if there is no home.
func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".inv.yaml"
	}
	return filepath.Join(home, ".inv.yaml")
}

// LoadConfig reads the YAML file at path over the defaults. A missing file is
// not an error. The EODHD API key falls back on $EODHD_API_KEY.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.Override(file)
	}
	if cfg.EODHDAPIKey == "" {
		cfg.EODHDAPIKey = os.Getenv(eodhd.APIKeyEnv)
	}
	return cfg, nil
}

// Override replaces every setting that o sets.
func (c *Config) Override(o Config) {
	if o.Provider != "" {
		c.Provider = o.Provider
	}
	if o.EODHDAPIKey != "" {
		c.EODHDAPIKey = o.EODHDAPIKey
	}
	if o.Currency != "" {
		c.Currency = o.Currency
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Cache != "" {
		c.Cache = o.Cache
	}
	if o.Model != "" {
		c.Model = o.Model
	}
}

// Validate checks the values that have a closed set of choices.
func (c Config) Validate() error {
	switch c.Provider {
	case "yahoo", "eodhd":
	default:
		return fmt.Errorf("unknown provider %q, want yahoo or eodhd", c.Provider)
	}
	switch {
	case c.Cache == "disk", c.Cache == "none", strings.HasPrefix(c.Cache, "redis://"):
	default:
		return fmt.Errorf("unknown cache %q, want disk, none or redis://host:port", c.Cache)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout %v must not be negative", c.Timeout)
	}
	return nil
}
