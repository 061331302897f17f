package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/premiumgate/internal/flagx"
)

// parseFlags overrides cfg with command-line flags. Only the flags listed in
// the package doc are looked at; everything else on the line is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-w", "-f", "-l", "-x"})

	fs := flag.NewFlagSet("gate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite database file")
	delay := fs.Int("w", int(cfg.CheckoutDelay.Milliseconds()), "checkout delay (in milliseconds)")
	fs.StringVar(&cfg.CatalogFile, "f", cfg.CatalogFile, "YAML catalog file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.Float64Var(&cfg.FaultRate, "x", cfg.FaultRate, "simulated checkout fault rate (0..1)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "w" {
			cfg.CheckoutDelay = time.Duration(*delay) * time.Millisecond
		}
	})
	return nil
}
