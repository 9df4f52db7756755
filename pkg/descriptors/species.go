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

// Species is a named chemical species with its two input energies in eV.
type Species struct {
	Name             string  `json:"name" yaml:"name"`
	IonizationEnergy float64 `json:"ionization_energy" yaml:"ionization_energy"`
	ElectronAffinity float64 `json:"electron_affinity" yaml:"electron_affinity"`
}

// Descriptors computes the reactivity indices for the species.
func (s Species) Descriptors() Set {
	return Compute(s.IonizationEnergy, s.ElectronAffinity)
}

// Input returns the value of one of the two input energies.
func (s Species) Input(in Input) float64 {
	if in == ElectronAffinity {
		return s.ElectronAffinity
	}
	return s.IonizationEnergy
}

// DefaultPair returns the reference species used when no input is given:
// H2O (I = 12.62 eV, A = 0.30 eV) and NH3 (I = 10.07 eV, A = 0.40 eV).
func DefaultPair() (Species, Species) {
	return Species{Name: "H2O", IonizationEnergy: 12.62, ElectronAffinity: 0.30},
		Species{Name: "NH3", IonizationEnergy: 10.07, ElectronAffinity: 0.40}
}

// Result pairs a species with its computed descriptors.
type Result struct {
	Species     Species `json:"species"`
	Descriptors Set     `json:"descriptors"`
}

// Comparison is the side-by-side evaluation of exactly two species.
type Comparison struct {
	First  Result `json:"first"`
	Second Result `json:"second"`
}

// Row is one line of the comparison table.
type Row struct {
	Descriptor Descriptor
	First      float64
	Second     float64
}

// Compare computes the descriptors of both species.
//
// Each species is evaluated independently; the comparison holds no state
// beyond the two results.
func Compare(first, second Species) Comparison {
	return Comparison{
		First:  Result{Species: first, Descriptors: first.Descriptors()},
		Second: Result{Species: second, Descriptors: second.Descriptors()},
	}
}

// Names returns the two species names in order.
func (c Comparison) Names() []string {
	return []string{c.First.Species.Name, c.Second.Species.Name}
}

// Rows returns one row per descriptor in canonical order.
func (c Comparison) Rows() []Row {
	rows := make([]Row, 0, len(All))
	for _, d := range All {
		rows = append(rows, Row{
			Descriptor: d,
			First:      c.First.Descriptors.Value(d),
			Second:     c.Second.Descriptors.Value(d),
		})
	}
	return rows
}

// Series returns the descriptor values of both species, one slice each,
// in canonical order. Charts consume this shape.
func (c Comparison) Series() [][]float64 {
	return [][]float64{c.First.Descriptors.Values(), c.Second.Descriptors.Values()}
}
