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
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
	"github.com/AleutianAI/dftindex/pkg/ux"
)

func (c *cli) newWatchCmd() *cobra.Command {
	var (
		opts     renderOptions
		once     bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Recompute the comparison whenever a species file changes",
		Long: `Read two species from a YAML file and print the comparison, then
print it again every time the file is saved. Stop with Ctrl+C.

The file lists exactly two species:

  species:
    - name: H2O
      ionization_energy: 12.62
      electron_affinity: 0.30
    - name: NH3
      ionization_energy: 10.07
      electron_affinity: 0.40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			w := &speciesWatcher{
				Path:     args[0],
				Debounce: debounce,
				Logger:   c.log,
				OnChange: func(cmp descriptors.Comparison) {
					c.observe(cmp)
					if ux.GetPersonality().Level != ux.PersonalityMachine {
						fmt.Fprintln(out, ux.RenderMuted("── "+time.Now().Format(time.TimeOnly)+" ──"))
					}
					c.renderComparison(out, cmp, opts)
					if err := c.writeMetrics(); err != nil {
						fmt.Fprintln(out, ux.RenderWarning(err.Error()))
					}
				},
				OnError: func(err error) {
					fmt.Fprintln(out, ux.RenderWarning(err.Error()))
				},
			}

			if once {
				if !w.Load() {
					return fmt.Errorf("could not load %s", args[0])
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return w.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&opts.bar, "bar", false, "Draw the grouped bar chart")
	cmd.Flags().BoolVar(&opts.radar, "radar", false, "Draw the radar chart")
	cmd.Flags().BoolVar(&once, "once", false, "Render the file once and exit")
	cmd.Flags().DurationVar(&debounce, "debounce", defaultWatchDebounce, "Wait this long after a change before reloading")
	return cmd
}
