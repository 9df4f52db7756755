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
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AleutianAI/dftindex/cmd/dftindex/config"
	"github.com/AleutianAI/dftindex/pkg/descriptors"
	"github.com/AleutianAI/dftindex/pkg/logging"
)

// defaultWatchDebounce coalesces the burst of events an editor save produces.
const defaultWatchDebounce = 150 * time.Millisecond

// speciesWatcher recomputes a comparison every time a species file changes.
//
// # Description
//
// The parent directory is watched rather than the file itself so that
// editors which save by writing a temporary file and renaming it over the
// original keep triggering updates. Events are debounced and reloads run
// sequentially on the Run goroutine.
//
// A file that cannot be read or parsed is reported through OnError and
// the watcher keeps running; the next successful save recovers.
type speciesWatcher struct {
	Path     string
	Debounce time.Duration
	Logger   *logging.Logger

	// OnChange receives every freshly computed comparison.
	OnChange func(descriptors.Comparison)

	// OnError receives load and parse failures.
	OnError func(error)
}

// Load reads the file once and dispatches the result.
func (w *speciesWatcher) Load() bool {
	first, second, err := config.LoadSpeciesFile(w.Path)
	if err != nil {
		w.Logger.Warn("species file rejected", "path", w.Path, "error", err)
		if w.OnError != nil {
			w.OnError(err)
		}
		return false
	}
	w.Logger.Debug("species file loaded", "path", w.Path, "first", first.Name, "second", second.Name)
	if w.OnChange != nil {
		w.OnChange(descriptors.Compare(first, second))
	}
	return true
}

// Run loads the file, then reloads it on every change until ctx is done.
func (w *speciesWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(w.Path)
	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = defaultWatchDebounce
	}

	w.Logger.Info("watching species file", "path", target)
	w.Load()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("stopped watching species file", "path", target)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.Logger.Debug("species file changed", "op", event.Op.String())
			pending = time.After(debounce)

		case <-pending:
			pending = nil
			w.Load()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Warn("file watcher error", "error", err)
		}
	}
}
