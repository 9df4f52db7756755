// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package descriptors computes conceptual-DFT global reactivity indices.
//
// Given the ionization energy I and the electron affinity A of a chemical
// species (both in electronvolts), the finite-difference approximations are:
//
//	μ = -(I + A) / 2        chemical potential
//	χ = -μ                  electronegativity
//	η = (I - A) / 2         chemical hardness
//	S = 1 / η               chemical softness
//	ω = μ² / (2η)           electrophilicity index
//
// When η is zero, S and ω are defined as exactly 0 so that no infinity or
// NaN ever reaches a table or chart.
//
// # Thread Safety
//
// Everything in this package is a pure value computation. There is no
// package-level mutable state.
package descriptors

// Set holds the five reactivity indices derived for one species.
//
// A Set is a plain value. Compute returns a fresh one on every call and it
// is never shared or updated in place.
type Set struct {
	Mu               float64 `json:"mu"`
	Chi              float64 `json:"chi"`
	Eta              float64 `json:"eta"`
	Softness         float64 `json:"softness"`
	Electrophilicity float64 `json:"electrophilicity"`
}

// Compute derives the reactivity indices from ionization energy and
// electron affinity.
//
// # Description
//
// Inputs are not validated: negative or physically meaningless values are
// accepted and produce the corresponding algebraic result. The only special
// case is zero hardness (I == A), where softness and electrophilicity are
// set to 0 instead of dividing by zero.
//
// # Inputs
//
//   - ionization: Ionization energy I in eV.
//   - affinity: Electron affinity A in eV.
//
// # Outputs
//
//   - Set: The five indices (μ, χ, η, S, ω).
//
// # Examples
//
//	set := descriptors.Compute(12.62, 0.30)
//	// set.Mu == -6.46, set.Eta == 6.16
func Compute(ionization, affinity float64) Set {
	mu := -(ionization + affinity) / 2
	eta := (ionization - affinity) / 2

	set := Set{
		Mu:  mu,
		Chi: -mu,
		Eta: eta,
	}
	if eta != 0 {
		set.Softness = 1 / eta
		set.Electrophilicity = mu * mu / (2 * eta)
	}
	return set
}

// Degenerate reports whether the set was computed with zero hardness, in
// which case Softness and Electrophilicity are 0 by convention.
func (s Set) Degenerate() bool {
	return s.Eta == 0
}

// Value returns the value of a single descriptor.
func (s Set) Value(d Descriptor) float64 {
	switch d {
	case ChemicalPotential:
		return s.Mu
	case Electronegativity:
		return s.Chi
	case Hardness:
		return s.Eta
	case Softness:
		return s.Softness
	case Electrophilicity:
		return s.Electrophilicity
	default:
		return 0
	}
}

// Values returns the indices in canonical order: μ, χ, η, S, ω.
func (s Set) Values() []float64 {
	return []float64{s.Mu, s.Chi, s.Eta, s.Softness, s.Electrophilicity}
}
