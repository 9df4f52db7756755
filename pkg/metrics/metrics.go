// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package metrics records descriptor computations as Prometheus metrics.
//
// # Description
//
// The CLI is short-lived and never listens on a port, so metrics are not
// scraped. Instead the registry is written to a node-exporter textfile
// collector file when the run ends (see WriteTextfile). Metrics include:
//   - Computation counters by species
//   - Degenerate (zero hardness) computation counter
//   - Last computed value per species and descriptor
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/AleutianAI/dftindex/pkg/descriptors"
)

// Namespace for all metrics
const metricsNamespace = "dftindex"

// Subsystem for descriptor metrics
const descriptorSubsystem = "descriptors"

// Recorder holds the Prometheus collectors for descriptor computations.
//
// # Fields
//
//   - ComputationsTotal: Counter of computations. Labels: species
//   - DegenerateTotal: Counter of computations with η = 0. Labels: species
//   - LastValue: Gauge of the most recent value. Labels: species, descriptor
type Recorder struct {
	ComputationsTotal *prometheus.CounterVec
	DegenerateTotal   *prometheus.CounterVec
	LastValue         *prometheus.GaugeVec

	registry *prometheus.Registry
}

// NewRecorder creates a Recorder backed by its own registry, so that
// several recorders (one per test, for instance) never collide on the
// global default registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		ComputationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: descriptorSubsystem,
				Name:      "computations_total",
				Help:      "Total number of descriptor set computations by species",
			},
			[]string{"species"},
		),
		DegenerateTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: descriptorSubsystem,
				Name:      "degenerate_hardness_total",
				Help:      "Computations where hardness was zero and softness/electrophilicity were set to 0",
			},
			[]string{"species"},
		),
		LastValue: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: descriptorSubsystem,
				Name:      "last_value",
				Help:      "Most recently computed descriptor value (eV or 1/eV)",
			},
			[]string{"species", "descriptor"},
		),
		registry: reg,
	}
}

// Observe records one computed result. A nil Recorder is a no-op so that
// callers can leave metrics disabled without branching.
func (r *Recorder) Observe(result descriptors.Result) {
	if r == nil {
		return
	}
	name := result.Species.Name
	r.ComputationsTotal.WithLabelValues(name).Inc()
	if result.Descriptors.Degenerate() {
		r.DegenerateTotal.WithLabelValues(name).Inc()
	}
	for _, d := range descriptors.All {
		r.LastValue.WithLabelValues(name, d.Key()).Set(result.Descriptors.Value(d))
	}
}

// ObserveComparison records both results of a comparison.
func (r *Recorder) ObserveComparison(c descriptors.Comparison) {
	r.Observe(c.First)
	r.Observe(c.Second)
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics in the Prometheus text format to path,
// atomically via a temporary file. An empty path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
