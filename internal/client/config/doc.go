// Package config loads runtime configuration for the premium gate CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   SQLite database file holding the entitlement ("" keeps it in memory)
//	-w int      simulated checkout delay (milliseconds)
//	-f string   YAML catalog file (built-in catalog when empty)
//	-l string   log level: debug, info, warn, error
//	-x float    probability that a simulated checkout fails (0..1)
//
// # JSON schema
//
// Durations accept strings like "900ms" or integer nanoseconds:
//
//	{
//	  "database_dsn": "premium.db",
//	  "checkout_delay": "900ms",
//	  "catalog_file": "catalog.yaml",
//	  "log_level": "info",
//	  "fault_rate": 0
//	}
//
// Keys missing from the JSON file keep their default.
package config
