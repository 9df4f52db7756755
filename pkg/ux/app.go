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
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
)

// field indexes into App.inputs
const (
	fieldName1 = iota
	fieldIonization1
	fieldAffinity1
	fieldName2
	fieldIonization2
	fieldAffinity2
	fieldCount
)

var fieldPrompts = [fieldCount]string{
	"Name ", "I (eV) ", "A (eV) ",
	"Name ", "I (eV) ", "A (eV) ",
}

// AppConfig configures the interactive calculator.
type AppConfig struct {
	// Chart sizes the bar and radar charts.
	Chart ChartConfig

	// OnCompute is called with every freshly computed comparison. It runs
	// inside the bubbletea update loop and must not block.
	OnCompute func(descriptors.Comparison)

	// OnInvalid is called when an edit leaves the inputs unparsable.
	OnInvalid func(error)
}

// App is the bubbletea model for the interactive calculator.
//
// # Description
//
// Six text inputs (name, I and A for two molecules) are shown above the
// comparison table. Every edit that changes a value triggers a fresh
// computation of both descriptor sets. While an input is not a finite
// number the last valid results stay on screen together with the error.
//
// # Keys
//
//   - Tab / Down, Shift+Tab / Up: move between fields
//   - Ctrl+B: toggle the grouped bar chart
//   - Ctrl+R: toggle the radar chart
//   - Ctrl+T: toggle the interpretation block
//   - Esc / Ctrl+C: quit
//
// # Thread Safety
//
// Designed for single-threaded use within the bubbletea event loop.
type App struct {
	config AppConfig

	inputs [fieldCount]textinput.Model
	focus  int

	comparison descriptors.Comparison
	err        error
	computes   int

	showBar        bool
	showRadar      bool
	showCommentary bool
	quitting       bool
}

// NewApp creates the interactive calculator pre-filled with two species
// and computes the initial comparison.
func NewApp(first, second descriptors.Species, config AppConfig) App {
	a := App{config: config}

	values := [2]SpeciesInput{NewSpeciesInput(first), NewSpeciesInput(second)}
	for i := range a.inputs {
		ti := textinput.New()
		ti.Prompt = fieldPrompts[i]
		ti.CharLimit = MaxSpeciesNameLength
		ti.Width = 16

		in := values[i/3]
		switch i % 3 {
		case 0:
			ti.SetValue(in.Name)
		case 1:
			ti.SetValue(in.IonizationEnergy)
		case 2:
			ti.SetValue(in.ElectronAffinity)
		}
		ti.CursorEnd()
		a.inputs[i] = ti
	}
	a.inputs[a.focus].Focus()
	a.recompute()
	return a
}

// Comparison returns the most recent valid comparison.
func (a App) Comparison() descriptors.Comparison {
	return a.comparison
}

// Err returns the current input error, nil while all inputs are valid.
func (a App) Err() error {
	return a.err
}

// Computations returns how many times the descriptors were computed.
func (a App) Computations() int {
	return a.computes
}

// Focused returns the index of the focused field (0..5).
func (a App) Focused() int {
	return a.focus
}

// ShowBar reports whether the bar chart is visible.
func (a App) ShowBar() bool { return a.showBar }

// ShowRadar reports whether the radar chart is visible.
func (a App) ShowRadar() bool { return a.showRadar }

// ShowCommentary reports whether the interpretation block is visible.
func (a App) ShowCommentary() bool { return a.showCommentary }

func (a App) speciesInput(n int) SpeciesInput {
	base := n * 3
	return SpeciesInput{
		Name:             a.inputs[base].Value(),
		IonizationEnergy: a.inputs[base+1].Value(),
		ElectronAffinity: a.inputs[base+2].Value(),
	}
}

// recompute evaluates both species from the current text.
func (a *App) recompute() {
	result := FormResult{Species: [2]SpeciesInput{a.speciesInput(0), a.speciesInput(1)}}
	cmp, err := result.Comparison()
	if err != nil {
		a.err = err
		if a.config.OnInvalid != nil {
			a.config.OnInvalid(err)
		}
		return
	}
	a.err = nil
	a.comparison = cmp
	a.computes++
	if a.config.OnCompute != nil {
		a.config.OnCompute(cmp)
	}
}

func (a *App) setFocus(i int) {
	a.inputs[a.focus].Blur()
	a.focus = (i + fieldCount) % fieldCount
	a.inputs[a.focus].Focus()
	a.inputs[a.focus].CursorEnd()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			a.quitting = true
			return a, tea.Quit
		case tea.KeyTab, tea.KeyDown, tea.KeyEnter:
			a.setFocus(a.focus + 1)
			return a, nil
		case tea.KeyShiftTab, tea.KeyUp:
			a.setFocus(a.focus - 1)
			return a, nil
		case tea.KeyCtrlB:
			a.showBar = !a.showBar
			return a, nil
		case tea.KeyCtrlR:
			a.showRadar = !a.showRadar
			return a, nil
		case tea.KeyCtrlT:
			a.showCommentary = !a.showCommentary
			return a, nil
		}
	}

	before := a.inputs[a.focus].Value()
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	if a.inputs[a.focus].Value() != before {
		a.recompute()
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(style(Styles.Title).Render("Chemical Reactivity Descriptor Comparison"))
	b.WriteString("\n")
	b.WriteString(style(Styles.Muted).Render("Conceptual DFT indices from ionization energy (I) and electron affinity (A)"))
	b.WriteString("\n\n")

	columns := make([]string, 2)
	for n := range columns {
		lines := []string{seriesStyle(n).Bold(ShouldShowColors()).Render(moleculeHeading(n))}
		for i := n * 3; i < n*3+3; i++ {
			lines = append(lines, a.inputs[i].View())
		}
		columns[n] = lipgloss.NewStyle().Width(32).Render(strings.Join(lines, "\n"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n\n")

	if a.err != nil {
		b.WriteString(IconWarning.Render() + " " + style(Styles.Warning).Render(a.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderTable(a.comparison))
	b.WriteString("\n")

	if a.showBar {
		b.WriteString("\n" + RenderBarChart(a.comparison, a.config.Chart) + "\n")
	}
	if a.showRadar {
		b.WriteString("\n" + RenderRadarChart(a.comparison, a.config.Chart) + "\n")
	}
	if a.showCommentary {
		b.WriteString("\n" + RenderCommentary() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(style(Styles.Muted).Render("tab next • shift+tab prev • ctrl+b bars • ctrl+r radar • ctrl+t interpretation • esc quit"))
	return b.String()
}

func moleculeHeading(n int) string {
	if n == 0 {
		return "Molecule 1"
	}
	return "Molecule 2"
}

// RunApp runs the interactive calculator until the user quits and returns
// the final state.
func RunApp(first, second descriptors.Species, config AppConfig, opts ...tea.ProgramOption) (App, error) {
	p := tea.NewProgram(NewApp(first, second, config), opts...)
	final, err := p.Run()
	if err != nil {
		return App{}, err
	}
	app, ok := final.(App)
	if !ok {
		return App{}, nil
	}
	return app, nil
}
