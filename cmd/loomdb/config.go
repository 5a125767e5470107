package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the CLI driver's own configuration, assembled through a
// defaults -> YAML file -> environment variable -> CLI flag hierarchy. The
// engine itself takes nothing but a decay rate; everything here exists to
// run the one-shot demo driver, not the core.
type Config struct {
	DataPath   string  `yaml:"data_path"`
	DecayRate  float64 `yaml:"decay_rate"`
	BoostDepth int     `yaml:"boost_depth"`
	LogLevel   string  `yaml:"log_level"`
}

// DefaultConfig returns the baseline configuration before any file, env, or
// flag override is applied.
func DefaultConfig() *Config {
	return &Config{
		DataPath:   "loomdb.backup.json",
		DecayRate:  0.9,
		BoostDepth: 3,
		LogLevel:   "info",
	}
}

// ConfigFromFile overlays YAML file contents onto cfg. A missing path is not
// an error; it simply leaves cfg untouched.
func ConfigFromFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// ConfigFromEnv overlays LOOMDB_* environment variables onto cfg.
func ConfigFromEnv(cfg *Config) {
	if v := os.Getenv("LOOMDB_DATA_PATH"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("LOOMDB_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOOMDB_DECAY_RATE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.DecayRate = parsed
		}
	}
	if v := os.Getenv("LOOMDB_BOOST_DEPTH"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.BoostDepth = parsed
		}
	}
}

// Validate checks the configuration is usable, logging soft warnings for
// suspicious-but-legal values rather than failing on them.
func (c *Config) Validate() error {
	if c.DecayRate <= 0 || c.DecayRate >= 1 {
		return fmt.Errorf("decay_rate must be in (0,1), got %v", c.DecayRate)
	}
	if c.BoostDepth < 0 {
		return fmt.Errorf("boost_depth must be >= 0, got %d", c.BoostDepth)
	}
	if c.BoostDepth > 10 {
		fmt.Fprintf(os.Stderr, "warning: boost_depth=%d is unusually high; propagation cost grows exponentially with depth\n", c.BoostDepth)
	}
	return nil
}
