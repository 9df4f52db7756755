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
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
)

// ChartConfig sizes the terminal charts.
type ChartConfig struct {
	// Width is the radar chart width in columns.
	Width int

	// Height is the bar chart plot height and the radar chart height, in rows.
	Height int
}

// DefaultChartConfig returns the chart sizes used when none are configured.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{Width: 41, Height: 15}
}

func (c ChartConfig) normalized() ChartConfig {
	def := DefaultChartConfig()
	if c.Width < 11 {
		c.Width = def.Width
	}
	if c.Height < 5 {
		c.Height = def.Height
	}
	return c
}

const (
	barWidth   = 3
	groupWidth = 2*barWidth + 3
)

// barRunes distinguish the two species even without colour
var barRunes = []rune{'█', '▒'}

// RenderBarChart renders a grouped vertical bar chart, two bars per
// descriptor, one per species.
//
// # Description
//
// Positive values grow upward from a zero axis and negative values grow
// downward. The vertical unit is shared, so the plot is split between the
// positive and negative parts in proportion to the largest magnitude on
// each side. Every row is a fixed number of eV; bars round to the nearest
// row.
//
// # Inputs
//
//   - cmp: The comparison to plot.
//   - cfg: Chart sizing; Height is the number of plot rows.
//
// # Outputs
//
//   - string: The chart, its x-axis symbols and a legend.
func RenderBarChart(cmp descriptors.Comparison, cfg ChartConfig) string {
	cfg = cfg.normalized()
	series := cmp.Series()
	names := cmp.Names()
	p := GetPersonality()

	maxPos, maxNeg := 0.0, 0.0
	for _, values := range series {
		for _, v := range values {
			maxPos = math.Max(maxPos, v)
			maxNeg = math.Max(maxNeg, -v)
		}
	}

	var b strings.Builder
	b.WriteString(style(Styles.Title).Render("Descriptor Comparison"))
	b.WriteString("\n")

	span := maxPos + maxNeg
	if span == 0 {
		b.WriteString(style(Styles.Muted).Render("all descriptor values are zero"))
		return b.String()
	}

	unit := span / float64(cfg.Height)
	posRows := int(math.Round(maxPos / unit))
	negRows := max(cfg.Height-posRows, int(math.Round(maxNeg/unit)))
	if maxNeg == 0 {
		negRows = 0
		posRows = cfg.Height
	}

	heights := make([][]int, len(series))
	for s, values := range series {
		heights[s] = make([]int, len(values))
		for i, v := range values {
			heights[s][i] = int(math.Round(v / unit))
		}
	}

	topLabel := FormatValue(maxPos, 2)
	bottomLabel := FormatValue(-maxNeg, 2)
	gutter := max(len(topLabel), len(bottomLabel), 4)
	axisStyle := style(Styles.Muted)

	plotRow := func(level int, label string) {
		fmt.Fprintf(&b, "%*s %s", gutter, label, axisStyle.Render("│"))
		for i := range descriptors.All {
			b.WriteString(" ")
			for s := range series {
				h := heights[s][i]
				filled := (level > 0 && h >= level) || (level < 0 && h <= level)
				if filled {
					b.WriteString(seriesStyle(s).Render(strings.Repeat(string(barRunes[s]), barWidth)))
				} else {
					b.WriteString(strings.Repeat(" ", barWidth))
				}
			}
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	for level := posRows; level >= 1; level-- {
		label := ""
		if level == posRows {
			label = topLabel
		}
		plotRow(level, label)
	}

	fmt.Fprintf(&b, "%*s %s%s\n", gutter, "0", axisStyle.Render("┼"),
		axisStyle.Render(strings.Repeat("─", groupWidth*len(descriptors.All))))

	for level := -1; level >= -negRows; level-- {
		label := ""
		if level == -negRows {
			label = bottomLabel
		}
		plotRow(level, label)
	}

	// x-axis symbols centred under each group
	b.WriteString(strings.Repeat(" ", gutter+2))
	for _, sym := range descriptors.Symbols() {
		b.WriteString(lipgloss.PlaceHorizontal(groupWidth, lipgloss.Center, sym))
	}
	b.WriteString("\n")

	if p.Level == PersonalityMachine {
		fmt.Fprintf(&b, "legend\t%s=%c\t%s=%c", tsvField(names[0]), barRunes[0], tsvField(names[1]), barRunes[1])
		return b.String()
	}
	b.WriteString(legend(names, barRunes))
	return b.String()
}

// legend renders a coloured key for the two species.
func legend(names []string, markers []rune) string {
	parts := make([]string, 0, len(names))
	for i, name := range names {
		parts = append(parts, seriesStyle(i).Render(string(markers[i]))+" "+name)
	}
	return strings.Join(parts, "   ")
}
