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

// radarMarkers draw the outline of the first and second species polygon
var radarMarkers = []rune{'*', 'o'}

const (
	radarOverlap = '#'
	radarGuide   = '·'
)

// cell ownership bits
const (
	ownGuide uint8 = 1 << iota
	ownFirst
	ownSecond
	ownLabel
)

// radarCanvas is a character grid with per-cell ownership for colouring.
type radarCanvas struct {
	width, height int
	runes         [][]rune
	owner         [][]uint8
}

func newRadarCanvas(width, height int) *radarCanvas {
	c := &radarCanvas{width: width, height: height}
	c.runes = make([][]rune, height)
	c.owner = make([][]uint8, height)
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", width))
		c.owner[y] = make([]uint8, width)
	}
	return c
}

func (c *radarCanvas) set(x, y int, r rune, own uint8) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	prev := c.owner[y][x]
	switch {
	case prev&ownLabel != 0:
		return
	case own == ownGuide && prev != 0:
		return
	case prev&ownFirst != 0 && prev&ownSecond != 0:
		return
	case own != ownGuide && prev&(ownFirst|ownSecond) != 0 && prev&own == 0:
		c.runes[y][x] = radarOverlap
		c.owner[y][x] = prev | own
		return
	}
	c.runes[y][x] = r
	c.owner[y][x] = (prev &^ ownGuide) | own
}

// line draws a Bresenham segment from (x0,y0) to (x1,y1).
func (c *radarCanvas) line(x0, y0, x1, y1 int, r rune, own uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	errAcc := dx + dy
	for {
		c.set(x0, y0, r, own)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

func (c *radarCanvas) label(x, y int, text string) {
	runes := []rune(text)
	x -= len(runes) / 2
	for i, r := range runes {
		xi := x + i
		if xi < 0 || y < 0 || xi >= c.width || y >= c.height {
			continue
		}
		c.runes[y][xi] = r
		c.owner[y][xi] = ownLabel
	}
}

func (c *radarCanvas) render() string {
	first := seriesStyle(0)
	second := seriesStyle(1)
	overlap := style(Styles.Warning)
	guide := style(Styles.Muted)
	labelStyle := style(Styles.Bold)

	lines := make([]string, c.height)
	for y := range c.runes {
		var b strings.Builder
		for x, r := range c.runes[y] {
			s := lipgloss.NewStyle()
			switch own := c.owner[y][x]; {
			case own&ownLabel != 0:
				s = labelStyle
			case own&ownFirst != 0 && own&ownSecond != 0:
				s = overlap
			case own&ownFirst != 0:
				s = first
			case own&ownSecond != 0:
				s = second
			case own&ownGuide != 0:
				s = guide
			}
			if r == ' ' {
				b.WriteRune(r)
				continue
			}
			b.WriteString(s.Render(string(r)))
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// RadarScale is the radial range of a radar chart: the centre is Min and
// the outer ring is Max.
type RadarScale struct {
	Min, Max float64
}

// NewRadarScale spans min(0, smallest value) to the largest value.
func NewRadarScale(series [][]float64) RadarScale {
	scale := RadarScale{Min: 0, Max: math.Inf(-1)}
	for _, values := range series {
		for _, v := range values {
			scale.Min = math.Min(scale.Min, v)
			scale.Max = math.Max(scale.Max, v)
		}
	}
	if math.IsInf(scale.Max, -1) {
		scale.Max = 0
	}
	return scale
}

// Fraction maps v to 0..1 along a spoke. A zero-width scale maps
// everything to the outer ring.
func (s RadarScale) Fraction(v float64) float64 {
	span := s.Max - s.Min
	if span == 0 {
		return 1
	}
	f := (v - s.Min) / span
	return math.Max(0, math.Min(1, f))
}

// RenderRadarChart renders a closed radar (spider) chart over the five
// descriptor axes with one polygon per species.
//
// # Description
//
// Axes start at the east and proceed counter-clockwise in canonical order
// (μ, χ, η, S, ω). Radii are scaled linearly with RadarScale so that the
// negative chemical potential stays on the plot. Terminal cells are about
// twice as tall as they are wide, so the horizontal radius is doubled.
// Cells where both outlines cross are drawn with '#'.
//
// # Inputs
//
//   - cmp: The comparison to plot.
//   - cfg: Canvas size in columns (Width) and rows (Height).
//
// # Outputs
//
//   - string: The chart, the radial scale and a legend.
func RenderRadarChart(cmp descriptors.Comparison, cfg ChartConfig) string {
	cfg = cfg.normalized()
	series := cmp.Series()
	names := cmp.Names()
	axes := descriptors.Symbols()
	scale := NewRadarScale(series)

	height := cfg.Height
	if height%2 == 0 {
		height++
	}
	cx, cy := cfg.Width/2, height/2
	ry := float64(cy - 1)
	rx := math.Min(float64(cx-2), 2*ry)

	point := func(axis int, frac float64) (int, int) {
		theta := 2 * math.Pi * float64(axis) / float64(len(axes))
		x := float64(cx) + frac*rx*math.Cos(theta)
		y := float64(cy) - frac*ry*math.Sin(theta)
		return int(math.Round(x)), int(math.Round(y))
	}

	canvas := newRadarCanvas(cfg.Width, height)

	// outer ring and spokes
	for step := 0; step < 72; step++ {
		theta := 2 * math.Pi * float64(step) / 72
		x := float64(cx) + rx*math.Cos(theta)
		y := float64(cy) - ry*math.Sin(theta)
		canvas.set(int(math.Round(x)), int(math.Round(y)), radarGuide, ownGuide)
	}
	for i := range axes {
		x, y := point(i, 1)
		canvas.line(cx, cy, x, y, radarGuide, ownGuide)
	}

	owners := []uint8{ownFirst, ownSecond}
	for s, values := range series {
		for i := range values {
			j := (i + 1) % len(values)
			x0, y0 := point(i, scale.Fraction(values[i]))
			x1, y1 := point(j, scale.Fraction(values[j]))
			canvas.line(x0, y0, x1, y1, radarMarkers[s], owners[s])
		}
	}

	for i, sym := range axes {
		theta := 2 * math.Pi * float64(i) / float64(len(axes))
		x := float64(cx) + (rx+2)*math.Cos(theta)
		y := float64(cy) - (ry+1)*math.Sin(theta)
		lx, ly := int(math.Round(x)), int(math.Round(y))
		ly = max(0, min(height-1, ly))
		canvas.label(lx, ly, sym)
	}

	var b strings.Builder
	b.WriteString(style(Styles.Title).Render("Radar Chart"))
	b.WriteString("\n")
	b.WriteString(canvas.render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", style(Styles.Muted).Render(fmt.Sprintf("centre %s, outer ring %s",
		FormatValue(scale.Min, 2), FormatValue(scale.Max, 2))))

	if GetPersonality().Level == PersonalityMachine {
		fmt.Fprintf(&b, "legend\t%s=%c\t%s=%c", tsvField(names[0]), radarMarkers[0], tsvField(names[1]), radarMarkers[1])
		return b.String()
	}
	b.WriteString(legend(names, radarMarkers))
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
