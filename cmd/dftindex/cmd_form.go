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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/dftindex/pkg/ux"
)

func (c *cli) newFormCmd() *cobra.Command {
	var accessible bool

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Enter both species in a guided form",
		Long: `Ask for the name, ionization energy and electron affinity of each
molecule, then which charts to draw, and print the comparison.

Numbers are checked as you type; anything that is not a finite decimal
number is rejected before it reaches the calculator.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationFullScreen: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !accessible && !ux.IsInteractive() {
				c.renderFallback(cmd, renderOptions{})
				return nil
			}

			first, second := c.cfg.Pair()
			result, err := ux.RunInputForm(first, second, accessible)
			if errors.Is(err, ux.ErrFormAborted) {
				c.log.Info("input form aborted")
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err != nil {
				return err
			}

			cmp, err := result.Comparison()
			if err != nil {
				return err
			}
			c.observe(cmp)
			c.renderComparison(cmd.OutOrStdout(), cmp, renderOptions{
				bar:   result.ShowBar,
				radar: result.ShowRadar,
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&accessible, "accessible", false,
		"Use line-by-line prompts instead of the full-screen form (screen readers)")
	return cmd
}
