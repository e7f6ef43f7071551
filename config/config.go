// Package config loads the wagerbook configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete wagerbook configuration.
type Config struct {
	// LedgerFile is the path of the JSONL session file.
	LedgerFile string `yaml:"ledger_file"`
	// Currency is the reporting currency code.
	Currency string `yaml:"currency"`
	// PositionScope decides whether the total position counts all bets or
	// only closed ones: "all" or "closed".
	PositionScope string `yaml:"position_scope"`
}

// Load reads the configuration from path. A missing file is not an error:
// defaults apply. Environment variables override file values.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WAGERBOOK_LEDGER"); v != "" {
		cfg.LedgerFile = v
	}
	if v := os.Getenv("WAGERBOOK_CURRENCY"); v != "" {
		cfg.Currency = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.LedgerFile == "" {
		cfg.LedgerFile = "bets.jsonl"
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if cfg.PositionScope == "" {
		cfg.PositionScope = "all"
	}
}
