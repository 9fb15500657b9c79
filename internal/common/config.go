// Package common provides shared utilities for Compass
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Compass
type Config struct {
	Environment string        `toml:"environment"`
	Logging     LoggingConfig `toml:"logging"`
	Policy      PolicyConfig  `toml:"policy"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// PolicyConfig groups the adjustable rule tables. The numbers are policy,
// not validated strategy. They are surfaced here so reviews and tests can
// audit them without reading the engine control flow.
type PolicyConfig struct {
	Concentration ConcentrationPolicy `toml:"concentration"`
	Confidence    ConfidencePolicy    `toml:"confidence"`
}

// ConcentrationPolicy holds the position-weight thresholds (percent of
// portfolio value) used by concentration detection and the synthesizer
// guardrail.
type ConcentrationPolicy struct {
	ModeratePct  float64 `toml:"moderate_pct"`  // above this a position is flagged
	HighPct      float64 `toml:"high_pct"`      // above this concentration is high / trim territory
	EmergencyPct float64 `toml:"emergency_pct"` // at or above this the guardrail forces a sell
}

// ConfidencePolicy holds the confidence-score cut-points shared by action
// selection and headline tier labels.
type ConfidencePolicy struct {
	HighThreshold int `toml:"high_threshold"` // at or above: high confidence / default buy
	LowThreshold  int `toml:"low_threshold"`  // below: low confidence / default hold
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Policy: PolicyConfig{
			Concentration: ConcentrationPolicy{
				ModeratePct:  20,
				HighPct:      25,
				EmergencyPct: 40,
			},
			Confidence: ConfidencePolicy{
				HighThreshold: 65,
				LowThreshold:  40,
			},
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped; later files override earlier ones.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("COMPASS_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("COMPASS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if v := os.Getenv("COMPASS_CONCENTRATION_MODERATE_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Policy.Concentration.ModeratePct = f
		}
	}
	if v := os.Getenv("COMPASS_CONCENTRATION_HIGH_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Policy.Concentration.HighPct = f
		}
	}
	if v := os.Getenv("COMPASS_CONCENTRATION_EMERGENCY_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Policy.Concentration.EmergencyPct = f
		}
	}
}

// Validate checks that policy thresholds are ordered and in range
func (c *Config) Validate() error {
	p := c.Policy.Concentration
	if p.ModeratePct <= 0 || p.HighPct <= p.ModeratePct || p.EmergencyPct <= p.HighPct {
		return fmt.Errorf("concentration thresholds must satisfy 0 < moderate < high < emergency, got %.1f/%.1f/%.1f",
			p.ModeratePct, p.HighPct, p.EmergencyPct)
	}

	cf := c.Policy.Confidence
	if cf.LowThreshold < 0 || cf.HighThreshold > 100 || cf.LowThreshold >= cf.HighThreshold {
		return fmt.Errorf("confidence thresholds must satisfy 0 <= low < high <= 100, got %d/%d",
			cf.LowThreshold, cf.HighThreshold)
	}

	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
