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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestCreateDefault verifies default config creation.
func TestCreateDefault(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".dftindex", "dftindex.yaml")

	if err := createDefault(configPath); err != nil {
		t.Fatalf("createDefault() failed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}

	if cfg.Meta.Version != CurrentConfigVersion {
		t.Errorf("Meta.Version = %q, want %q", cfg.Meta.Version, CurrentConfigVersion)
	}
	if len(cfg.Species) != 2 || cfg.Species[0].Name != "H2O" || cfg.Species[1].Name != "NH3" {
		t.Errorf("unexpected default species %+v", cfg.Species)
	}
}

// TestCreateDefault_DirectoryCreation verifies nested directories are created.
func TestCreateDefault_DirectoryCreation(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "deep", "nested", "path", "dftindex.yaml")

	if err := createDefault(configPath); err != nil {
		t.Fatalf("createDefault() failed with nested path: %v", err)
	}

	info, err := os.Stat(filepath.Dir(configPath))
	if err != nil {
		t.Fatalf("directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "dftindex.yaml")

	if _, err := WriteDefault(configPath, false); err != nil {
		t.Fatalf("first WriteDefault() failed: %v", err)
	}

	_, err := WriteDefault(configPath, false)
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("expected ErrConfigExists, got %v", err)
	}

	if _, err := WriteDefault(configPath, true); err != nil {
		t.Fatalf("forced WriteDefault() failed: %v", err)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "dftindex.yaml")
	content := []byte("output:\n  precision: 2\n")
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Output.Precision != 2 {
		t.Errorf("Precision = %d, want 2", cfg.Output.Precision)
	}
	if cfg.Output.ChartHeight != 15 {
		t.Errorf("ChartHeight = %d, want default 15", cfg.Output.ChartHeight)
	}
	first, second := cfg.Pair()
	if first.Name != "H2O" || second.Name != "NH3" {
		t.Errorf("expected default pair, got %s/%s", first.Name, second.Name)
	}
}

func TestLoad_CustomSpecies(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "dftindex.yaml")
	content := []byte(`species:
  - name: HF
    ionization_energy: 16.03
    electron_affinity: -0.5
  - name: CO
    ionization_energy: 14.01
    electron_affinity: 1.5
`)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	first, second := cfg.Pair()
	if first.Name != "HF" || first.ElectronAffinity != -0.5 {
		t.Errorf("unexpected first species %+v", first)
	}
	if second.Name != "CO" || second.IonizationEnergy != 14.01 {
		t.Errorf("unexpected second species %+v", second)
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing explicit config path")
	}
}

func TestLoad_MissingDefaultPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Output.Precision != DefaultConfig().Output.Precision {
		t.Errorf("expected defaults when no config file exists")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "output: [unclosed"},
		{"one species", "species:\n  - name: HF\n    ionization_energy: 1\n    electron_affinity: 1\n"},
		{"precision", "output:\n  precision: 11\n"},
		{"nan energy", "species:\n  - name: A\n    ionization_energy: .nan\n    electron_affinity: 1\n  - name: B\n    ionization_energy: 1\n    electron_affinity: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "dftindex.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(configPath); err == nil {
				t.Error("expected Load() to fail")
			}
		})
	}
}

func TestParseSpecies(t *testing.T) {
	first, second, err := ParseSpecies([]byte(`species:
  - {name: H2O, ionization_energy: 12.62, electron_affinity: 0.30}
  - {name: NH3, ionization_energy: 10.07, electron_affinity: 0.40}
`))
	if err != nil {
		t.Fatalf("ParseSpecies() failed: %v", err)
	}
	if first.IonizationEnergy != 12.62 || second.ElectronAffinity != 0.40 {
		t.Errorf("unexpected species %+v %+v", first, second)
	}

	if _, _, err := ParseSpecies([]byte("species: []")); err == nil {
		t.Error("expected an error for an empty species list")
	}
	if _, _, err := ParseSpecies([]byte("species:\n  - {ionization_energy: 1, electron_affinity: 1}\n  - {name: B, ionization_energy: 1, electron_affinity: 1}\n")); err == nil {
		t.Error("expected an error for a nameless species")
	}
}

// TestLoad_SpeciesNameLength checks the name limit at the boundary: a
// config that loads must also be accepted by compare.
func TestLoad_SpeciesNameLength(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"at limit", 64, false},
		{"over limit", 65, true},
		{"far over limit", 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			long := strings.Repeat("C", tt.length)
			configPath := filepath.Join(t.TempDir(), "dftindex.yaml")
			content := "species:\n  - {name: " + long + ", ionization_energy: 12.62, electron_affinity: 0.30}\n" +
				"  - {name: NH3, ionization_energy: 10.07, electron_affinity: 0.40}\n"
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(configPath)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected Load() to reject the name")
				}
				if !strings.Contains(err.Error(), "longer than 64 characters") {
					t.Errorf("unexpected error %q", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
		})
	}
}

func TestParseSpecies_RejectsControlCharacters(t *testing.T) {
	_, _, err := ParseSpecies([]byte("species:\n  - {name: \"a\\tb\", ionization_energy: 1, electron_affinity: 1}\n  - {name: B, ionization_energy: 1, electron_affinity: 1}\n"))
	if err == nil {
		t.Fatal("expected an error for a name with a tab")
	}
	if !strings.Contains(err.Error(), "control characters") {
		t.Errorf("unexpected error %q", err)
	}
}

func TestParseSpecies_NameLength(t *testing.T) {
	doc := func(name string) []byte {
		return []byte("species:\n  - {name: " + name + ", ionization_energy: 1, electron_affinity: 1}\n  - {name: B, ionization_energy: 1, electron_affinity: 1}\n")
	}
	if _, _, err := ParseSpecies(doc(strings.Repeat("N", 64))); err != nil {
		t.Errorf("64-character name should be accepted: %v", err)
	}
	if _, _, err := ParseSpecies(doc(strings.Repeat("N", 65))); err == nil {
		t.Error("expected an error for a 65-character name")
	}
}

func TestLoadSpeciesFile_Missing(t *testing.T) {
	if _, _, err := LoadSpeciesFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing species file")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "dftindex.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  precision: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DFTINDEX_PRECISION", "6")
	t.Setenv("DFTINDEX_LOG_LEVEL", "debug")
	t.Setenv("DFTINDEX_METRICS_TEXTFILE", "/tmp/dftindex.prom")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Output.Precision != 6 {
		t.Errorf("Precision = %d, want the environment value 6", cfg.Output.Precision)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Metrics.Textfile != "/tmp/dftindex.prom" {
		t.Errorf("Metrics.Textfile = %q", cfg.Metrics.Textfile)
	}
	if cfg.Output.ChartWidth != 41 {
		t.Errorf("unset variables must keep file or default values, got width %d", cfg.Output.ChartWidth)
	}
}

func TestLoad_EnvironmentOverrideInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Setenv("DFTINDEX_CHART_HEIGHT", "tall")
	if _, err := Load(""); err == nil {
		t.Error("expected a parse error for a non-numeric override")
	}

	t.Setenv("DFTINDEX_CHART_HEIGHT", "0")
	if _, err := Load(""); err == nil {
		t.Error("expected a validation error for a zero chart height")
	}
}
