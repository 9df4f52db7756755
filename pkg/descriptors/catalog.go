// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package descriptors

// Descriptor identifies one of the five derived reactivity indices.
type Descriptor int

const (
	ChemicalPotential Descriptor = iota
	Electronegativity
	Hardness
	Softness
	Electrophilicity
)

// All lists the descriptors in canonical display order.
var All = []Descriptor{
	ChemicalPotential,
	Electronegativity,
	Hardness,
	Softness,
	Electrophilicity,
}

var descriptorInfo = map[Descriptor]struct {
	key    string
	symbol string
	name   string
}{
	ChemicalPotential: {"mu", "μ", "Chemical Potential"},
	Electronegativity: {"chi", "χ", "Electronegativity"},
	Hardness:          {"eta", "η", "Chemical Hardness"},
	Softness:          {"S", "S", "Chemical Softness"},
	Electrophilicity:  {"omega", "ω", "Electrophilicity"},
}

// Key returns the short ASCII identifier ("mu", "chi", ...), used for
// machine output and commentary lookups.
func (d Descriptor) Key() string {
	if info, ok := descriptorInfo[d]; ok {
		return info.key
	}
	return "unknown"
}

// Symbol returns the Greek (or Latin) symbol used on chart axes.
func (d Descriptor) Symbol() string {
	if info, ok := descriptorInfo[d]; ok {
		return info.symbol
	}
	return "?"
}

// Name returns the descriptor name without its symbol.
func (d Descriptor) Name() string {
	if info, ok := descriptorInfo[d]; ok {
		return info.name
	}
	return "Unknown"
}

// Label returns the table label, e.g. "Chemical Potential (μ)".
func (d Descriptor) Label() string {
	return d.Name() + " (" + d.Symbol() + ")"
}

// String implements fmt.Stringer.
func (d Descriptor) String() string {
	return d.Key()
}

// Input identifies one of the two user-supplied quantities.
type Input int

const (
	IonizationEnergy Input = iota
	ElectronAffinity
)

// Key returns "I" or "A".
func (in Input) Key() string {
	switch in {
	case IonizationEnergy:
		return "I"
	case ElectronAffinity:
		return "A"
	default:
		return "?"
	}
}

// Label returns the table label, e.g. "Ionization Energy (I)".
func (in Input) Label() string {
	switch in {
	case IonizationEnergy:
		return "Ionization Energy (I)"
	case ElectronAffinity:
		return "Electron Affinity (A)"
	default:
		return "Unknown"
	}
}

// Symbols returns the chart axis labels in canonical order.
func Symbols() []string {
	out := make([]string, len(All))
	for i, d := range All {
		out[i] = d.Symbol()
	}
	return out
}
