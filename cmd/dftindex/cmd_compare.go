// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
	"github.com/AleutianAI/dftindex/pkg/ux"
)

// speciesFlags binds --nameN, --iN and --aN for molecule N.
type speciesFlags struct {
	n    string
	name string
	i, a float64
}

func (f *speciesFlags) register(cmd *cobra.Command, n string) {
	f.n = n
	cmd.Flags().StringVar(&f.name, "name"+n, "", "Name of molecule "+n)
	cmd.Flags().Float64Var(&f.i, "i"+n, 0, "Ionization energy of molecule "+n+" in eV")
	cmd.Flags().Float64Var(&f.a, "a"+n, 0, "Electron affinity of molecule "+n+" in eV")
}

// apply overrides the fields of s that were given on the command line.
func (f *speciesFlags) apply(cmd *cobra.Command, s descriptors.Species) descriptors.Species {
	if cmd.Flags().Changed("name" + f.n) {
		s.Name = f.name
	}
	if cmd.Flags().Changed("i" + f.n) {
		s.IonizationEnergy = f.i
	}
	if cmd.Flags().Changed("a" + f.n) {
		s.ElectronAffinity = f.a
	}
	return s
}

func (c *cli) newCompareCmd() *cobra.Command {
	var (
		molecules [2]speciesFlags
		opts      renderOptions
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compute and compare the descriptors of two species",
		Long: `Compute the reactivity descriptors of two species and print the
comparison table. Species not given on the command line come from the
config file (H2O and NH3 by default).`,
		Example: `  dftindex compare
  dftindex compare --name1 HF --i1 16.03 --a1 -0.5 --bar --radar
  dftindex compare --personality machine --commentary
  dftindex compare --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			first, second := c.cfg.Pair()
			first = molecules[0].apply(cmd, first)
			second = molecules[1].apply(cmd, second)
			for i, s := range []descriptors.Species{first, second} {
				if err := ux.ValidateFinite(s); err != nil {
					return fmt.Errorf("molecule %d: %w", i+1, err)
				}
			}

			cmp := descriptors.Compare(first, second)
			c.observe(cmp)

			if asJSON {
				doc, err := ux.RenderJSON(cmp)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), doc)
				return nil
			}
			c.renderComparison(cmd.OutOrStdout(), cmp, opts)
			return nil
		},
	}

	molecules[0].register(cmd, "1")
	molecules[1].register(cmd, "2")
	cmd.Flags().BoolVar(&opts.bar, "bar", false, "Draw the grouped bar chart")
	cmd.Flags().BoolVar(&opts.radar, "radar", false, "Draw the radar chart")
	cmd.Flags().BoolVar(&opts.commentary, "commentary", false, "Append the interpretation block")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the comparison as JSON")
	cmd.MarkFlagsMutuallyExclusive("json", "bar")
	cmd.MarkFlagsMutuallyExclusive("json", "radar")
	cmd.MarkFlagsMutuallyExclusive("json", "commentary")
	return cmd
}
