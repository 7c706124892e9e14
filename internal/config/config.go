// Package config loads the blockc TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "blockc.toml"

// Config holds the complete CLI configuration
type Config struct {
	Log      LogConfig      `toml:"log"`
	Pipeline PipelineConfig `toml:"pipeline"`
	Output   OutputConfig   `toml:"output"`
	Store    StoreConfig    `toml:"store"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// PipelineConfig selects which passes run for a unit
type PipelineConfig struct {
	Validate        bool `toml:"validate"`
	Gate            bool `toml:"gate"`
	StopOnLexErrors bool `toml:"stop_on_lex_errors"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Tokens  bool   `toml:"tokens"`
	Tree    bool   `toml:"tree"`
	Symbols bool   `toml:"symbols"`
	Color   bool   `toml:"color"`
	Format  string `toml:"format"`
	Dump    string `toml:"dump"`
}

// StoreConfig holds the compile history database settings
type StoreConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

var (
	logLevels   = []string{"debug", "info", "warn", "warning", "error"}
	logFormats  = []string{"text", "json"}
	outFormats  = []string{"text", "yaml"}
	dumpFormats = []string{"none", "tree", "litter"}
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Pipeline: PipelineConfig{
			Validate:        true,
			Gate:            false,
			StopOnLexErrors: false,
		},
		Output: OutputConfig{
			Tokens:  false,
			Tree:    true,
			Symbols: true,
			Color:   true,
			Format:  "text",
			Dump:    "tree",
		},
		Store: StoreConfig{
			Enabled: false,
			Path:    "blockc.db",
		},
	}
}

// Load decodes path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills string keys that were set to empty values
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
	if c.Output.Format == "" {
		c.Output.Format = defaults.Output.Format
	}
	if c.Output.Dump == "" {
		c.Output.Dump = defaults.Output.Dump
	}
	if c.Store.Path == "" {
		c.Store.Path = defaults.Store.Path
	}
}

// Validate rejects unknown enum values
func (c *Config) Validate() error {
	checks := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"log.level", c.Log.Level, logLevels},
		{"log.format", c.Log.Format, logFormats},
		{"output.format", c.Output.Format, outFormats},
		{"output.dump", c.Output.Dump, dumpFormats},
	}

	for _, check := range checks {
		if !slices.Contains(check.allowed, check.value) {
			return fmt.Errorf("invalid %s %q, expected one of %v", check.key, check.value, check.allowed)
		}
	}

	return nil
}
