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

// CommentaryEntry is one row of the interpretation block.
type CommentaryEntry struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Commentary string `json:"commentary"`
}

// commentaryOrder fixes the display order of the interpretation block.
var commentaryOrder = []string{"I", "A", "mu", "chi", "eta", "S", "omega"}

// commentary is the fixed interpretation of the reference H2O / NH3 pair.
// It is static text and does not change with the computed values.
var commentary = map[string]CommentaryEntry{
	"I": {
		Key:        "I",
		Label:      IonizationEnergy.Label(),
		Commentary: "H2O needs more energy to lose an electron, so it is less reactive as a nucleophile.",
	},
	"A": {
		Key:        "A",
		Label:      ElectronAffinity.Label(),
		Commentary: "(Energy released on accepting an electron) NH3 has a greater tendency to accept electrons than H2O.",
	},
	"mu": {
		Key:        "mu",
		Label:      ChemicalPotential.Label(),
		Commentary: "H2O is chemically more stable and less prone to exchange electrons.",
	},
	"chi": {
		Key:        "chi",
		Label:      Electronegativity.Label(),
		Commentary: "H2O is more electronegative, indicating a stronger attraction toward electrons.",
	},
	"eta": {
		Key:        "eta",
		Label:      Hardness.Label(),
		Commentary: "H2O is harder, meaning it is less prone to charge transfer.",
	},
	"S": {
		Key:        "S",
		Label:      Softness.Label(),
		Commentary: "NH3 is softer, so it can redistribute its electron density more easily.",
	},
	"omega": {
		Key:   "omega",
		Label: Electrophilicity.Label(),
		Commentary: "(Overall propensity to accept electron density) H2O is the better electrophile and has more " +
			"capacity to accept electrons (a contextual descriptor within a chemical interaction; it includes " +
			"the chemical hardness, reflecting stability after accepting electrons).",
	},
}

// Interpretation returns the fixed commentary for a descriptor or input key
// ("I", "A", "mu", "chi", "eta", "S", "omega").
func Interpretation(key string) (CommentaryEntry, bool) {
	entry, ok := commentary[key]
	return entry, ok
}

// Commentary returns the whole interpretation block in display order.
func Commentary() []CommentaryEntry {
	out := make([]CommentaryEntry, 0, len(commentaryOrder))
	for _, key := range commentaryOrder {
		out = append(out, commentary[key])
	}
	return out
}
