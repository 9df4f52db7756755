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
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/dftindex/cmd/dftindex/config"
	"github.com/AleutianAI/dftindex/pkg/descriptors"
	"github.com/AleutianAI/dftindex/pkg/logging"
	"github.com/AleutianAI/dftindex/pkg/metrics"
	"github.com/AleutianAI/dftindex/pkg/ux"
)

// Command annotations read by the root pre-run hook.
const (
	// annotationSkipConfig marks commands that must work without a valid
	// config file (config init).
	annotationSkipConfig = "dftindex/skip-config"

	// annotationFullScreen marks commands that own the terminal; console
	// logging is disabled for them.
	annotationFullScreen = "dftindex/full-screen"
)

// cli holds the flag values and the per-invocation runtime shared by all
// subcommands.
type cli struct {
	// --- persistent flags ---
	configPath  string
	personality string // UX personality level (full/standard/minimal/machine)
	logLevel    string
	precision   int
	metricsFile string

	// --- set up in PersistentPreRunE ---
	cfg     config.Config
	logger  *logging.Logger // owns the log file
	log     *logging.Logger // session-scoped child of logger
	metrics *metrics.Recorder
	session string

	root *cobra.Command
}

// newCLI builds the command tree around a fresh cli.
func newCLI() *cli {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "dftindex",
		Short: "Compare chemical reactivity descriptors of two species",
		Long: `dftindex computes conceptual DFT reactivity descriptors (chemical
potential, electronegativity, hardness, softness and electrophilicity)
from the ionization energy and electron affinity of two chemical species
and compares them side by side.`,
		Version:            version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "",
		"Config file (default ~/.dftindex/dftindex.yaml)")
	pf.StringVar(&c.personality, "personality", "",
		"Output style: full, standard, minimal, machine (env: DFTINDEX_PERSONALITY)")
	pf.StringVar(&c.logLevel, "log-level", "",
		"Log level: debug, info, warn, error (default from config)")
	pf.IntVar(&c.precision, "precision", -1,
		"Decimals shown for descriptor values, 0-10 (default from config)")
	pf.StringVar(&c.metricsFile, "metrics-file", "",
		"Write Prometheus metrics to this textfile after the command")

	rootCmd.AddCommand(
		c.newCompareCmd(),
		c.newInteractiveCmd(),
		c.newFormCmd(),
		c.newWatchCmd(),
		c.newInterpretCmd(),
		c.newConfigCmd(),
	)
	c.root = rootCmd
	return c
}

// execute runs the command tree. The logger is closed even when the
// command fails, since cobra skips PersistentPostRunE after a RunE error.
func (c *cli) execute() error {
	defer c.close()
	return c.root.Execute()
}

// close releases the log file. Safe to call when setup never ran.
func (c *cli) close() {
	if c.logger == nil {
		return
	}
	_ = c.logger.Close()
	c.logger = nil
}

// setup loads the config and initialises personality, logging and metrics.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if cmd.Annotations[annotationSkipConfig] == "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	c.cfg = cfg

	// Initialize UX personality from flag, environment or config
	if c.personality != "" {
		ux.SetPersonalityLevel(ux.ParsePersonalityLevel(c.personality))
	} else {
		ux.InitPersonality(cfg.Output.Personality)
	}
	precision := cfg.Output.Precision
	if c.precision >= 0 {
		precision = c.precision
	}
	ux.SetPrecision(precision)

	level := cfg.Logging.Level
	if c.logLevel != "" {
		level = c.logLevel
	}
	c.session = uuid.NewString()
	c.logger = logging.New(logging.Config{
		Level:   logging.ParseLevel(level),
		LogDir:  cfg.Logging.Dir,
		Service: "dftindex",
		JSON:    cfg.Logging.JSON,
		Quiet:   cmd.Annotations[annotationFullScreen] != "",
		Writer:  cmd.ErrOrStderr(),
	})
	c.log = c.logger.With("session_id", c.session, "command", cmd.Name())
	c.metrics = metrics.NewRecorder()

	c.log.Debug("configuration loaded",
		"config", c.configPath,
		"personality", string(ux.GetPersonality().Level),
		"precision", ux.GetPersonality().Precision)
	return nil
}

// teardown exports metrics after a successful command.
func (c *cli) teardown(cmd *cobra.Command, args []string) error {
	return c.writeMetrics()
}

func (c *cli) metricsPath() string {
	if c.metricsFile != "" {
		return c.metricsFile
	}
	return c.cfg.Metrics.Textfile
}

func (c *cli) writeMetrics() error {
	path := c.metricsPath()
	if err := c.metrics.WriteTextfile(path); err != nil {
		c.log.Error("metrics export failed", "path", path, "error", err)
		return err
	}
	if path != "" {
		c.log.Debug("metrics written", "path", path)
	}
	return nil
}

// observe records a fresh comparison in metrics and logs.
func (c *cli) observe(cmp descriptors.Comparison) {
	c.metrics.ObserveComparison(cmp)
	c.log.Info("descriptors computed",
		"first", cmp.First.Species.Name,
		"second", cmp.Second.Species.Name,
		"omega_first", cmp.First.Descriptors.Electrophilicity,
		"omega_second", cmp.Second.Descriptors.Electrophilicity)
	for _, r := range []descriptors.Result{cmp.First, cmp.Second} {
		if r.Descriptors.Degenerate() {
			c.log.Warn("zero chemical hardness, softness and electrophilicity reported as 0",
				"species", r.Species.Name)
		}
	}
}

func (c *cli) chartConfig() ux.ChartConfig {
	return ux.ChartConfig{
		Width:  c.cfg.Output.ChartWidth,
		Height: c.cfg.Output.ChartHeight,
	}
}

// renderOptions selects the optional sections of the report.
type renderOptions struct {
	bar        bool
	radar      bool
	commentary bool
}

// renderComparison writes the full report for a comparison: inputs, the
// descriptor table, degenerate-hardness notes and the requested extras.
func (c *cli) renderComparison(w io.Writer, cmp descriptors.Comparison, opts renderOptions) {
	level := ux.GetPersonality().Level
	sep := "\n"
	if level == ux.PersonalityMachine {
		sep = ""
	}

	if level == ux.PersonalityFull {
		fmt.Fprintln(w, ux.Styles.Title.Render("Chemical Reactivity Descriptor Comparison"))
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, ux.RenderInputs(cmp))
	fmt.Fprint(w, sep)
	fmt.Fprintln(w, ux.RenderTable(cmp))

	for _, r := range []descriptors.Result{cmp.First, cmp.Second} {
		if r.Descriptors.Degenerate() {
			fmt.Fprintln(w, ux.RenderWarning(fmt.Sprintf(
				"%s: I equals A, so hardness is zero; softness and electrophilicity are reported as 0",
				r.Species.Name)))
		}
	}

	if opts.bar {
		fmt.Fprint(w, sep)
		fmt.Fprintln(w, ux.RenderBarChart(cmp, c.chartConfig()))
	}
	if opts.radar {
		fmt.Fprint(w, sep)
		fmt.Fprintln(w, ux.RenderRadarChart(cmp, c.chartConfig()))
	}
	if opts.commentary {
		fmt.Fprint(w, sep)
		fmt.Fprintln(w, ux.RenderCommentary())
	}
}

// renderFallback is used by the terminal-only commands when no terminal is
// attached: the configured pair is rendered as a static report.
func (c *cli) renderFallback(cmd *cobra.Command, opts renderOptions) {
	name := cmd.Name()
	c.log.Warn("no terminal attached, rendering the configured species", "command", name)
	fmt.Fprintln(cmd.OutOrStdout(), ux.RenderWarning(
		fmt.Sprintf("%s needs a terminal; showing the configured species (use compare with flags instead)", name)))

	cmp := descriptors.Compare(c.cfg.Pair())
	c.observe(cmp)
	c.renderComparison(cmd.OutOrStdout(), cmp, opts)
}

// interpretationKeys lists the keys accepted by the interpret command.
func interpretationKeys() string {
	keys := make([]string, 0, 7)
	for _, e := range descriptors.Commentary() {
		keys = append(keys, e.Key)
	}
	return strings.Join(keys, ", ")
}
