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

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
	"github.com/AleutianAI/dftindex/pkg/ux"
)

func (c *cli) newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"live"},
		Short:   "Edit both species and watch the descriptors update as you type",
		Long: `Open a full-screen calculator with six fields (name, I and A for each
molecule). The table is recomputed on every keystroke.

Keys: tab/shift+tab move between fields, ctrl+b toggles the bar chart,
ctrl+r the radar chart, ctrl+t the interpretation block, esc quits.

The final comparison is printed when the calculator closes.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationFullScreen: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ux.IsInteractive() {
				c.renderFallback(cmd, renderOptions{})
				return nil
			}

			first, second := c.cfg.Pair()
			app, err := ux.RunApp(first, second, c.appConfig(),
				tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if err != nil {
				return fmt.Errorf("run interactive calculator: %w", err)
			}

			c.endSession(app)
			c.renderComparison(cmd.OutOrStdout(), app.Comparison(), renderOptions{
				bar:        app.ShowBar(),
				radar:      app.ShowRadar(),
				commentary: app.ShowCommentary(),
			})
			return nil
		},
	}
}

// appConfig wires the calculator to the session logger. Intermediate
// results are only logged; metrics see the final comparison alone, so
// partly typed names never become label values.
func (c *cli) appConfig() ux.AppConfig {
	return ux.AppConfig{
		Chart: c.chartConfig(),
		OnCompute: func(cmp descriptors.Comparison) {
			c.log.Debug("descriptors recomputed",
				"first", cmp.First.Species.Name,
				"second", cmp.Second.Species.Name)
		},
		OnInvalid: func(err error) {
			c.log.Debug("input rejected", "error", err)
		},
	}
}

// endSession records the comparison left on screen when the calculator
// closed.
func (c *cli) endSession(app ux.App) {
	c.log.Info("interactive session ended", "computations", app.Computations())
	c.observe(app.Comparison())
}
