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
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
)

// ErrConfigExists is returned by WriteDefault when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// DefaultPath returns ~/.dftindex/dftindex.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".dftindex", "dftindex.yaml"), nil
}

// Load reads the config at path, or DefaultPath when path is empty.
//
// # Description
//
// Values are decoded on top of DefaultConfig, so a file only needs the keys
// it changes, then DFTINDEX_* environment variables are applied. A missing
// file at the default location yields the defaults; a missing file at an
// explicit path is an error. The result is validated.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// first run, defaults only
	default:
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overrides scalar settings from DFTINDEX_* variables. The species
// list is only configurable from the file.
func applyEnv(cfg *Config) error {
	for _, section := range []any{&cfg.Output, &cfg.Logging, &cfg.Metrics} {
		if err := env.Parse(section); err != nil {
			return fmt.Errorf("failed to apply environment overrides: %w", err)
		}
	}
	return nil
}

// WriteDefault writes the default config to path (DefaultPath when empty)
// and returns the path written. An existing file is only replaced when
// force is set.
func WriteDefault(path string, force bool) (string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	if err := createDefault(path); err != nil {
		return path, err
	}
	return path, nil
}

func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create the config directory %w", err)
	}
	data, err := Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal encodes a config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal the config: %w", err)
	}
	return data, nil
}

// speciesFile is the document read by the watch command:
//
//	species:
//	  - name: H2O
//	    ionization_energy: 12.62
//	    electron_affinity: 0.30
//	  - name: NH3
//	    ionization_energy: 10.07
//	    electron_affinity: 0.40
type speciesFile struct {
	Species []descriptors.Species `yaml:"species"`
}

// LoadSpeciesFile reads exactly two species from a YAML file.
func LoadSpeciesFile(path string) (descriptors.Species, descriptors.Species, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return descriptors.Species{}, descriptors.Species{}, fmt.Errorf("read species file: %w", err)
	}
	return ParseSpecies(data)
}

// ParseSpecies decodes a species document and checks that it holds exactly
// two valid entries.
func ParseSpecies(data []byte) (descriptors.Species, descriptors.Species, error) {
	var doc speciesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return descriptors.Species{}, descriptors.Species{}, fmt.Errorf("parse species file: %w", err)
	}
	if len(doc.Species) != 2 {
		return descriptors.Species{}, descriptors.Species{},
			fmt.Errorf("species file: expected exactly 2 entries, got %d", len(doc.Species))
	}
	for i, s := range doc.Species {
		if err := ValidateSpecies(s); err != nil {
			return descriptors.Species{}, descriptors.Species{}, fmt.Errorf("species[%d]: %w", i, err)
		}
	}
	return doc.Species[0], doc.Species[1], nil
}
