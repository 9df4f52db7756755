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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
)

// FormatValue formats a descriptor value with a fixed number of decimals.
// Negative zero is printed as zero.
func FormatValue(v float64, precision int) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// tsvField replaces tabs, newlines and other control characters so a value
// always stays in its own column.
func tsvField(v string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, v)
}

// RenderTable renders the comparison table keyed by descriptor label and
// species name.
//
// # Description
//
// Machine personality produces tab-separated lines with a header row and
// descriptor keys ("mu", "chi", ...) in the first column. Every other level
// produces a bordered lipgloss table with full labels; full and standard
// colour each species column.
//
// # Inputs
//
//   - cmp: The comparison to render.
//
// # Outputs
//
//   - string: The rendered table without a trailing newline.
func RenderTable(cmp descriptors.Comparison) string {
	p := GetPersonality()
	names := cmp.Names()
	rows := cmp.Rows()

	if p.Level == PersonalityMachine {
		var b strings.Builder
		b.WriteString("descriptor\t" + tsvField(names[0]) + "\t" + tsvField(names[1]))
		for _, row := range rows {
			fmt.Fprintf(&b, "\n%s\t%s\t%s",
				row.Descriptor.Key(),
				FormatValue(row.First, p.Precision),
				FormatValue(row.Second, p.Precision))
		}
		return b.String()
	}

	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{
			row.Descriptor.Label(),
			FormatValue(row.First, p.Precision),
			FormatValue(row.Second, p.Precision),
		})
	}

	border := lipgloss.RoundedBorder()
	if p.Level == PersonalityMinimal {
		border = lipgloss.NormalBorder()
	}

	t := table.New().
		Border(border).
		BorderStyle(style(lipgloss.NewStyle().Foreground(ColorTealDeep))).
		Headers("Descriptor", names[0], names[1]).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			if row == table.HeaderRow {
				s = s.Bold(ShouldShowColors())
				if col > 0 {
					return s.Inherit(seriesStyle(col - 1))
				}
				return s.Inherit(style(Styles.Subtitle))
			}
			return s
		})

	return t.String()
}

// RenderInputs renders the two input energies of each species, one line
// per species. Machine output echoes the energies exactly as given.
func RenderInputs(cmp descriptors.Comparison) string {
	p := GetPersonality()
	species := []descriptors.Species{cmp.First.Species, cmp.Second.Species}

	var b strings.Builder
	for i, s := range species {
		if i > 0 {
			b.WriteString("\n")
		}
		if p.Level == PersonalityMachine {
			fmt.Fprintf(&b, "input\t%s\t%s\t%s", tsvField(s.Name),
				FormatValue(s.IonizationEnergy, -1), FormatValue(s.ElectronAffinity, -1))
			continue
		}
		fmt.Fprintf(&b, "%s  I = %s eV  A = %s eV",
			seriesStyle(i).Bold(ShouldShowColors()).Render(s.Name),
			FormatValue(s.IonizationEnergy, 2),
			FormatValue(s.ElectronAffinity, 2))
	}
	return b.String()
}

// RenderCommentary renders the fixed interpretation block.
func RenderCommentary() string {
	entries := descriptors.Commentary()

	if GetPersonality().Level == PersonalityMachine {
		var b strings.Builder
		for i, e := range entries {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(e.Key + "\t" + e.Commentary)
		}
		return b.String()
	}

	data := make([][]string, 0, len(entries))
	for _, e := range entries {
		data = append(data, []string{e.Label, e.Commentary})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(style(lipgloss.NewStyle().Foreground(ColorTealDeep))).
		Headers("Descriptor", "Interpretation").
		Rows(data...).
		Width(100).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Inherit(style(Styles.Subtitle)).Bold(ShouldShowColors())
			}
			return s
		})

	return t.String()
}

// jsonComparison is the --json document.
type jsonComparison struct {
	Species []jsonSpecies `json:"species"`
}

type jsonSpecies struct {
	Name             string  `json:"name"`
	IonizationEnergy float64 `json:"ionization_energy"`
	ElectronAffinity float64 `json:"electron_affinity"`
	Mu               float64 `json:"mu"`
	Chi              float64 `json:"chi"`
	Eta              float64 `json:"eta"`
	Softness         float64 `json:"softness"`
	Electrophilicity float64 `json:"electrophilicity"`
	Degenerate       bool    `json:"degenerate"`
}

// RenderJSON renders the comparison as an indented JSON document.
func RenderJSON(cmp descriptors.Comparison) (string, error) {
	doc := jsonComparison{}
	for _, r := range []descriptors.Result{cmp.First, cmp.Second} {
		doc.Species = append(doc.Species, jsonSpecies{
			Name:             r.Species.Name,
			IonizationEnergy: r.Species.IonizationEnergy,
			ElectronAffinity: r.Species.ElectronAffinity,
			Mu:               r.Descriptors.Mu,
			Chi:              r.Descriptors.Chi,
			Eta:              r.Descriptors.Eta,
			Softness:         r.Descriptors.Softness,
			Electrophilicity: r.Descriptors.Electrophilicity,
			Degenerate:       r.Descriptors.Degenerate(),
		})
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal comparison: %w", err)
	}
	return string(data), nil
}
