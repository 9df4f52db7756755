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
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
)

func defaultComparison() descriptors.Comparison {
	return descriptors.Compare(descriptors.DefaultPair())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      string
	}{
		{"four decimals", 3.3873051948, 4, "3.3873"},
		{"negative", -5.235, 4, "-5.2350"},
		{"no decimals", 6.46, 0, "6"},
		{"negative zero", math.Copysign(0, -1), 2, "0.00"},
		{"zero", 0, 3, "0.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value, tt.precision))
		})
	}
}

func TestRenderTable_Machine(t *testing.T) {
	withLevel(t, PersonalityMachine)

	lines := strings.Split(RenderTable(defaultComparison()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "descriptor\tH2O\tNH3", lines[0])
	assert.Equal(t, "mu\t-6.4600\t-5.2350", lines[1])
	assert.Equal(t, "chi\t6.4600\t5.2350", lines[2])
	assert.Equal(t, "eta\t6.1600\t4.8350", lines[3])
	assert.Equal(t, "S\t0.1623\t0.2068", lines[4])
	assert.Equal(t, "omega\t3.3873\t2.8340", lines[5])
}

func TestRenderTable_MachineHonoursPrecision(t *testing.T) {
	withLevel(t, PersonalityMachine)
	SetPrecision(2)

	out := RenderTable(defaultComparison())
	assert.Contains(t, out, "omega\t3.39\t2.83")
}

func TestRenderTable_Bordered(t *testing.T) {
	for _, level := range []PersonalityLevel{PersonalityFull, PersonalityMinimal} {
		t.Run(string(level), func(t *testing.T) {
			withLevel(t, level)

			out := RenderTable(defaultComparison())
			for _, want := range []string{
				"Descriptor", "H2O", "NH3",
				"Chemical Potential (μ)", "Electronegativity (χ)",
				"Chemical Hardness (η)", "Chemical Softness (S)",
				"Electrophilicity (ω)", "3.3873", "2.8340",
			} {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRenderTable_RowOrder(t *testing.T) {
	withLevel(t, PersonalityMinimal)

	out := RenderTable(defaultComparison())
	last := -1
	for _, d := range descriptors.All {
		idx := strings.Index(out, d.Label())
		require.GreaterOrEqual(t, idx, 0, d.Label())
		assert.Greater(t, idx, last, "%s out of order", d.Label())
		last = idx
	}
}

func TestRenderTable_ZeroHardness(t *testing.T) {
	withLevel(t, PersonalityMachine)

	cmp := descriptors.Compare(
		descriptors.Species{Name: "X", IonizationEnergy: 5, ElectronAffinity: 5},
		descriptors.Species{Name: "Y", IonizationEnergy: 5, ElectronAffinity: 5},
	)
	out := RenderTable(cmp)
	assert.Contains(t, out, "eta\t0.0000\t0.0000")
	assert.Contains(t, out, "S\t0.0000\t0.0000")
	assert.Contains(t, out, "omega\t0.0000\t0.0000")
}

func TestRenderInputs(t *testing.T) {
	withLevel(t, PersonalityMachine)
	assert.Equal(t, "input\tH2O\t12.62\t0.3\ninput\tNH3\t10.07\t0.4", RenderInputs(defaultComparison()))

	SetPersonalityLevel(PersonalityMinimal)
	out := RenderInputs(defaultComparison())
	assert.Contains(t, out, "H2O  I = 12.62 eV  A = 0.30 eV")
	assert.Contains(t, out, "NH3  I = 10.07 eV  A = 0.40 eV")
}

func TestRenderInputs_MachineKeepsFullValues(t *testing.T) {
	withLevel(t, PersonalityMachine)

	cmp := descriptors.Compare(
		descriptors.Species{Name: "X", IonizationEnergy: 12.6789, ElectronAffinity: 0.004},
		descriptors.Species{Name: "Y", IonizationEnergy: 9, ElectronAffinity: -1.25},
	)
	assert.Equal(t, "input\tX\t12.6789\t0.004\ninput\tY\t9\t-1.25", RenderInputs(cmp))
}

func TestRenderTable_MachineNamesStayInColumn(t *testing.T) {
	withLevel(t, PersonalityMachine)

	cmp := descriptors.Compare(
		descriptors.Species{Name: "a\tb", IonizationEnergy: 10, ElectronAffinity: 1},
		descriptors.Species{Name: "c\nd", IonizationEnergy: 8, ElectronAffinity: 2},
	)
	out := RenderTable(cmp)
	header := strings.Split(out, "\n")[0]
	assert.Equal(t, "descriptor\ta b\tc d", header)
	for _, line := range strings.Split(out, "\n") {
		assert.Len(t, strings.Split(line, "\t"), 3, line)
	}
	for _, line := range strings.Split(RenderInputs(cmp), "\n") {
		assert.Len(t, strings.Split(line, "\t"), 4, line)
	}
}

func TestRenderCommentary(t *testing.T) {
	withLevel(t, PersonalityMachine)

	lines := strings.Split(RenderCommentary(), "\n")
	entries := descriptors.Commentary()
	require.Len(t, lines, len(entries))
	for i, e := range entries {
		assert.True(t, strings.HasPrefix(lines[i], e.Key+"\t"), lines[i])
	}

	SetPersonalityLevel(PersonalityMinimal)
	out := RenderCommentary()
	assert.Contains(t, out, "Interpretation")
	assert.Contains(t, out, "Ionization Energy (I)")
	assert.Contains(t, out, "Electrophilicity (ω)")
}

func TestRenderCommentary_IndependentOfInputs(t *testing.T) {
	withLevel(t, PersonalityMachine)

	before := RenderCommentary()
	_ = RenderTable(descriptors.Compare(
		descriptors.Species{Name: "A", IonizationEnergy: -4, ElectronAffinity: -8},
		descriptors.Species{Name: "B", IonizationEnergy: 1, ElectronAffinity: 1},
	))
	assert.Equal(t, before, RenderCommentary())
}

func TestRenderJSON(t *testing.T) {
	out, err := RenderJSON(defaultComparison())
	require.NoError(t, err)

	var doc struct {
		Species []struct {
			Name             string  `json:"name"`
			IonizationEnergy float64 `json:"ionization_energy"`
			Mu               float64 `json:"mu"`
			Electrophilicity float64 `json:"electrophilicity"`
			Degenerate       bool    `json:"degenerate"`
		} `json:"species"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Species, 2)

	assert.Equal(t, "H2O", doc.Species[0].Name)
	assert.Equal(t, 12.62, doc.Species[0].IonizationEnergy)
	assert.InDelta(t, -6.46, doc.Species[0].Mu, 1e-9)
	assert.InDelta(t, 3.38730, doc.Species[0].Electrophilicity, 1e-4)
	assert.False(t, doc.Species[0].Degenerate)
	assert.Equal(t, "NH3", doc.Species[1].Name)
}
