// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
	"github.com/AleutianAI/dftindex/pkg/ux"
)

// CurrentConfigVersion is written into new config files.
const CurrentConfigVersion = "1"

// Config is the on-disk dftindex configuration.
//
// Scalar settings can be overridden with DFTINDEX_* environment variables
// (see the env tags); the output personality is read from
// DFTINDEX_PERSONALITY by the ux package.
type Config struct {
	Meta    ConfigMeta            `yaml:"meta"`
	Species []descriptors.Species `yaml:"species"`
	Output  OutputConfig          `yaml:"output"`
	Logging LoggingConfig         `yaml:"logging"`
	Metrics MetricsConfig         `yaml:"metrics"`
}

// ConfigMeta tracks the config schema version.
type ConfigMeta struct {
	Version string `yaml:"version"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	// Personality is full, standard, minimal or machine. Empty means
	// detect from the terminal.
	Personality string `yaml:"personality"`

	// Precision is the number of decimals in tables (0..10).
	Precision int `yaml:"precision" env:"DFTINDEX_PRECISION"`

	ChartWidth  int `yaml:"chart_width" env:"DFTINDEX_CHART_WIDTH"`
	ChartHeight int `yaml:"chart_height" env:"DFTINDEX_CHART_HEIGHT"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level string `yaml:"level" env:"DFTINDEX_LOG_LEVEL"`
	Dir   string `yaml:"dir" env:"DFTINDEX_LOG_DIR"`
	JSON  bool   `yaml:"json" env:"DFTINDEX_LOG_JSON"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// Textfile, when set, receives the computation metrics in Prometheus
	// text format after every command. Suitable for node_exporter's
	// textfile collector.
	Textfile string `yaml:"textfile" env:"DFTINDEX_METRICS_TEXTFILE"`
}

// Personality values accepted in OutputConfig.
var validPersonalities = []string{"", "full", "standard", "minimal", "machine"}

// Log levels accepted in LoggingConfig.
var validLogLevels = []string{"", "debug", "info", "warn", "warning", "error"}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	first, second := descriptors.DefaultPair()
	return Config{
		Meta:    ConfigMeta{Version: CurrentConfigVersion},
		Species: []descriptors.Species{first, second},
		Output: OutputConfig{
			Personality: "",
			Precision:   4,
			ChartWidth:  41,
			ChartHeight: 15,
		},
		Logging: LoggingConfig{
			Level: "warn",
			Dir:   "~/.dftindex/logs",
		},
	}
}

// Pair returns the two configured species. Call Validate first.
func (c Config) Pair() (descriptors.Species, descriptors.Species) {
	if len(c.Species) < 2 {
		return descriptors.DefaultPair()
	}
	return c.Species[0], c.Species[1]
}

// Validate checks the structure of the config and returns every problem
// found, joined.
func (c Config) Validate() error {
	var errs []error

	if len(c.Species) != 2 {
		errs = append(errs, fmt.Errorf("species: expected exactly 2 entries, got %d", len(c.Species)))
	}
	for i, s := range c.Species {
		if err := ValidateSpecies(s); err != nil {
			errs = append(errs, fmt.Errorf("species[%d]: %w", i, err))
		}
	}

	if c.Output.Precision < 0 || c.Output.Precision > 10 {
		errs = append(errs, fmt.Errorf("output.precision: must be between 0 and 10, got %d", c.Output.Precision))
	}
	if c.Output.ChartWidth <= 0 {
		errs = append(errs, fmt.Errorf("output.chart_width: must be positive, got %d", c.Output.ChartWidth))
	}
	if c.Output.ChartHeight <= 0 {
		errs = append(errs, fmt.Errorf("output.chart_height: must be positive, got %d", c.Output.ChartHeight))
	}
	if !oneOf(c.Output.Personality, validPersonalities) {
		errs = append(errs, fmt.Errorf("output.personality: unknown value %q", c.Output.Personality))
	}
	if !oneOf(c.Logging.Level, validLogLevels) {
		errs = append(errs, fmt.Errorf("logging.level: unknown value %q", c.Logging.Level))
	}

	return errors.Join(errs...)
}

// ValidateSpecies checks one species entry with the rules every collector
// shares. Any finite energy is accepted.
func ValidateSpecies(s descriptors.Species) error {
	return ux.ValidateFinite(s)
}

func oneOf(v string, allowed []string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
