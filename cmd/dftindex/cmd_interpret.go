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

func (c *cli) newInterpretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interpret [KEY]",
		Short: "Show the interpretation of each descriptor for H2O and NH3",
		Long: `Print the fixed interpretation of the reference H2O / NH3 comparison.
With KEY, print a single entry. Keys: ` + interpretationKeys() + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, ux.RenderCommentary())
				return nil
			}

			entry, ok := descriptors.Interpretation(args[0])
			if !ok {
				return fmt.Errorf("unknown descriptor %q (expected one of %s)", args[0], interpretationKeys())
			}
			if ux.GetPersonality().Level == ux.PersonalityMachine {
				fmt.Fprintf(out, "%s\t%s\n", entry.Key, entry.Commentary)
				return nil
			}
			fmt.Fprintf(out, "%s\n%s\n", ux.Styles.Bold.Render(entry.Label), entry.Commentary)
			return nil
		},
	}
}
