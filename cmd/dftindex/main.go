// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command dftindex compares the conceptual DFT reactivity descriptors of two
// chemical species from their ionization energies and electron affinities.
package main

import (
	"os"

	"github.com/AleutianAI/dftindex/pkg/ux"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newCLI().execute(); err != nil {
		ux.Error(err.Error())
		os.Exit(1)
	}
}
