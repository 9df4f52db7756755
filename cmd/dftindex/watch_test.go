// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
	"github.com/AleutianAI/dftindex/pkg/logging"
)

const pairYAML = `species:
  - {name: H2O, ionization_energy: 12.62, electron_affinity: 0.30}
  - {name: NH3, ionization_energy: 10.07, electron_affinity: 0.40}
`

// replaceFile writes content next to path and renames it into place, the
// way most editors save.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0644))
	require.NoError(t, os.Rename(tmp, path))
}

func TestSpeciesWatcher_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pairYAML), 0644))

	var got []descriptors.Comparison
	w := &speciesWatcher{
		Path:     path,
		Logger:   logging.New(logging.Config{Quiet: true}),
		OnChange: func(c descriptors.Comparison) { got = append(got, c) },
	}

	require.True(t, w.Load())
	require.Len(t, got, 1)
	assert.Equal(t, descriptors.Compare(descriptors.DefaultPair()), got[0])
}

func TestSpeciesWatcher_LoadError(t *testing.T) {
	var errs []error
	w := &speciesWatcher{
		Path:    filepath.Join(t.TempDir(), "missing.yaml"),
		Logger:  logging.New(logging.Config{Quiet: true}),
		OnError: func(err error) { errs = append(errs, err) },
	}

	assert.False(t, w.Load())
	assert.Len(t, errs, 1)
}

func TestSpeciesWatcher_LoadRejectsLongName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.yaml")
	long := strings.Repeat("C", 65)
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(pairYAML, "H2O", long, 1)), 0644))

	var errs []error
	changed := 0
	w := &speciesWatcher{
		Path:     path,
		Logger:   logging.New(logging.Config{Quiet: true}),
		OnChange: func(descriptors.Comparison) { changed++ },
		OnError:  func(err error) { errs = append(errs, err) },
	}

	assert.False(t, w.Load())
	assert.Zero(t, changed)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "longer than 64 characters")
}

func TestSpeciesWatcher_Run(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pairYAML), 0644))

	changes := make(chan descriptors.Comparison, 16)
	w := &speciesWatcher{
		Path:     path,
		Debounce: 20 * time.Millisecond,
		Logger:   logging.New(logging.Config{Quiet: true}),
		OnChange: func(c descriptors.Comparison) { changes <- c },
		OnError:  func(error) {},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case c := <-changes:
		assert.Equal(t, "H2O", c.First.Species.Name)
	case <-time.After(5 * time.Second):
		t.Fatal("initial load not reported")
	}

	replaceFile(t, path, `species:
  - {name: HF, ionization_energy: 16.03, electron_affinity: -0.5}
  - {name: NH3, ionization_energy: 10.07, electron_affinity: 0.40}
`)

	deadline := time.After(5 * time.Second)
	for updated := false; !updated; {
		select {
		case c := <-changes:
			if c.First.Species.Name == "HF" {
				updated = true
				assert.InDelta(t, -7.765, c.First.Descriptors.Mu, 1e-9)
			}
		case <-deadline:
			t.Fatal("change not reported")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestSpeciesWatcher_RunMissingDirectory(t *testing.T) {
	w := &speciesWatcher{
		Path:   filepath.Join(t.TempDir(), "no", "such", "dir", "pair.yaml"),
		Logger: logging.New(logging.Config{Quiet: true}),
	}
	assert.Error(t, w.Run(context.Background()))
}
