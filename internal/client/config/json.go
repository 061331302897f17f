package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/premiumgate/internal/flagx"
	"github.com/dmitrijs2005/premiumgate/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell a
// missing key apart from a zero value.
type JsonConfig struct {
	DatabaseDSN   *string         `json:"database_dsn"`
	CheckoutDelay *timex.Duration `json:"checkout_delay"`
	CatalogFile   *string         `json:"catalog_file"`
	LogLevel      *string         `json:"log_level"`
	FaultRate     *float64        `json:"fault_rate"`
}

// parseJson overlays cfg with the JSON file given by -c/-config. Without
// the flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.CheckoutDelay != nil {
		cfg.CheckoutDelay = jc.CheckoutDelay.Duration
	}
	if jc.CatalogFile != nil {
		cfg.CatalogFile = *jc.CatalogFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.FaultRate != nil {
		cfg.FaultRate = *jc.FaultRate
	}
	return nil
}
