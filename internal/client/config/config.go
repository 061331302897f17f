package config

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime settings for the gate CLI.
type Config struct {
	DatabaseDSN   string
	CheckoutDelay time.Duration
	CatalogFile   string
	LogLevel      string
	FaultRate     float64
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "premium.db"
	c.CheckoutDelay = 900 * time.Millisecond
	c.CatalogFile = ""
	c.LogLevel = "info"
	c.FaultRate = 0
}

// Validate rejects values the services cannot work with.
func (c *Config) Validate() error {
	if c.CheckoutDelay < 0 {
		return fmt.Errorf("%w: negative checkout delay %s", ErrInvalidConfig, c.CheckoutDelay)
	}
	if c.FaultRate < 0 || c.FaultRate > 1 {
		return fmt.Errorf("%w: fault rate %v outside [0,1]", ErrInvalidConfig, c.FaultRate)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config (if any), then flags. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
