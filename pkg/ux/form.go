// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ux

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
)

// ErrFormAborted is returned when the user cancels the input form.
var ErrFormAborted = errors.New("input form aborted")

// FormResult holds the values collected by the input form.
type FormResult struct {
	Species   [2]SpeciesInput
	ShowBar   bool
	ShowRadar bool
}

// NewFormResult pre-fills a FormResult with the given species.
func NewFormResult(first, second descriptors.Species) *FormResult {
	return &FormResult{
		Species: [2]SpeciesInput{NewSpeciesInput(first), NewSpeciesInput(second)},
	}
}

// Comparison converts the collected text into a comparison.
func (r *FormResult) Comparison() (descriptors.Comparison, error) {
	first, err := r.Species[0].Species()
	if err != nil {
		return descriptors.Comparison{}, fmt.Errorf("molecule 1: %w", err)
	}
	second, err := r.Species[1].Species()
	if err != nil {
		return descriptors.Comparison{}, fmt.Errorf("molecule 2: %w", err)
	}
	return descriptors.Compare(first, second), nil
}

// speciesGroup builds the form page for one molecule. Field titles follow
// the name as it is typed.
func speciesGroup(n int, in *SpeciesInput) *huh.Group {
	nameOr := func() string {
		if name := strings.TrimSpace(in.Name); name != "" {
			return name
		}
		return fmt.Sprintf("molecule %d", n)
	}

	return huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("Name of molecule %d", n)).
			Value(&in.Name).
			Validate(ValidateName),
		huh.NewInput().
			TitleFunc(func() string {
				return fmt.Sprintf("Ionization energy of %s (eV)", nameOr())
			}, &in.Name).
			Value(&in.IonizationEnergy).
			Validate(ValidateNumber),
		huh.NewInput().
			TitleFunc(func() string {
				return fmt.Sprintf("Electron affinity of %s (eV)", nameOr())
			}, &in.Name).
			Value(&in.ElectronAffinity).
			Validate(ValidateNumber),
	).Title(fmt.Sprintf("Molecule %d", n))
}

// NewInputForm builds the input form bound to result.
//
// # Description
//
// Three pages: one per molecule (name, I, A) and a final page asking
// which charts to draw. Numeric fields reject anything that is not a
// finite number before the calculator ever sees it.
//
// # Inputs
//
//   - result: Pre-filled values; updated in place as the user types.
//   - accessible: Use huh's line-oriented accessible mode (no full screen).
func NewInputForm(result *FormResult, accessible bool) *huh.Form {
	form := huh.NewForm(
		speciesGroup(1, &result.Species[0]),
		speciesGroup(2, &result.Species[1]),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show the grouped bar chart?").
				Value(&result.ShowBar),
			huh.NewConfirm().
				Title("Show the radar chart?").
				Value(&result.ShowRadar),
		).Title("Charts"),
	)
	theme := huh.ThemeCharm()
	if !ShouldShowColors() {
		theme = huh.ThemeBase()
	}
	return form.WithTheme(theme).WithAccessible(accessible)
}

// RunInputForm shows the form and returns the collected values.
//
// Returns ErrFormAborted when the user cancels with Ctrl+C or Esc.
func RunInputForm(first, second descriptors.Species, accessible bool) (*FormResult, error) {
	result := NewFormResult(first, second)
	if err := NewInputForm(result, accessible).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrFormAborted
		}
		return nil, fmt.Errorf("run input form: %w", err)
	}
	return result, nil
}
