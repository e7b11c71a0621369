// Package config loads prep configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	OutputRepr = "repr"
	OutputJSON = "json"
)

// ValidLogLevels lists the accepted values of log_level.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all prep configuration. Command-line flags take precedence
// over these values when set explicitly.
type Config struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	Output   string `yaml:"output"`    // repr, json

	// Replacement for missing values in "clean fill-missing"
	Fill string `yaml:"fill"`

	Normalize NormalizeConfig `yaml:"normalize"`
	Clip      ClipConfig      `yaml:"clip"`
	Shuffle   ShuffleConfig   `yaml:"shuffle"`
	CSV       CSVConfig       `yaml:"csv"`
}

// NormalizeConfig holds the target range for min-max scaling.
type NormalizeConfig struct {
	NewMin float64 `yaml:"new_min"`
	NewMax float64 `yaml:"new_max"`
}

// ClipConfig holds the default clipping bounds.
type ClipConfig struct {
	MinValue float64 `yaml:"min_value"`
	MaxValue float64 `yaml:"max_value"`
}

// ShuffleConfig configures "struct shuffle".
type ShuffleConfig struct {
	// Seed makes shuffles reproducible. Nil means a fresh random seed per run.
	Seed *int64 `yaml:"seed,omitempty"`
}

// CSVConfig configures column loading via --file.
type CSVConfig struct {
	Delimiter string   `yaml:"delimiter"`
	HasHeader bool     `yaml:"has_header"`
	NAValues  []string `yaml:"na_values"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Output:   OutputRepr,
		Fill:     "0",
		Normalize: NormalizeConfig{
			NewMin: 0.0,
			NewMax: 1.0,
		},
		Clip: ClipConfig{
			MinValue: 0.0,
			MaxValue: 1.0,
		},
		CSV: CSVConfig{
			Delimiter: ",",
			HasHeader: true,
			NAValues:  []string{"NA", "null"},
		},
	}
}

// Load reads configuration from path on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PREP_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PREP_OUTPUT"); v != "" {
		c.Output = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	validLevel := false
	for _, l := range ValidLogLevels {
		if c.LogLevel == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log_level: %s (valid: %v)", c.LogLevel, ValidLogLevels)
	}

	if c.Output != OutputRepr && c.Output != OutputJSON {
		return fmt.Errorf("invalid output: %s (valid: %s, %s)", c.Output, OutputRepr, OutputJSON)
	}

	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("invalid csv delimiter %q: must be a single character", c.CSV.Delimiter)
	}
	return nil
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *CSVConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
