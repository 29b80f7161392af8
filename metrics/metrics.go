// SPDX-License-Identifier: MIT

// Package metrics records generation statistics on a private Prometheus
// registry. A batch run has no scrape endpoint, so the registry is exported
// once at the end with WriteTextfile (node_exporter textfile format).
//
// All Recorder methods are safe on a nil receiver, which lets library code
// record unconditionally while callers opt in.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kclique"

// Recorder owns the registry and the dataset collectors.
type Recorder struct {
	reg *prometheus.Registry

	graphs       *prometheus.CounterVec
	removals     *prometheus.CounterVec
	removedNodes prometheus.Counter
	failures     *prometheus.CounterVec
	bytes        *prometheus.CounterVec
	runSeconds   prometheus.Gauge
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		graphs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_generated_total",
			Help:      "Graphs generated, by collection.",
		}, []string{"collection"}),
		removals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clique_removals_total",
			Help:      "Removal passes on without-clique graphs, by outcome.",
		}, []string{"outcome"}),
		removedNodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "removed_nodes_total",
			Help:      "Nodes deleted by clique removal.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Pipeline failures, by stage.",
		}, []string{"stage"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_written_total",
			Help:      "Encoded bytes persisted, by sink.",
		}, []string{"sink"}),
		runSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Wall time of the last dataset generation.",
		}),
	}
	r.reg.MustRegister(r.graphs, r.removals, r.removedNodes, r.failures, r.bytes, r.runSeconds)

	return r
}

// Registry exposes the underlying registry (tests, custom exporters).
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.reg
}

// GraphGenerated counts one finished graph of the given collection.
func (r *Recorder) GraphGenerated(collection string) {
	if r == nil {
		return
	}
	r.graphs.WithLabelValues(collection).Inc()
}

// Removal records one removal pass: how many cliques and nodes it deleted.
func (r *Recorder) Removal(cliques, nodes int) {
	if r == nil {
		return
	}
	outcome := "none"
	if cliques > 0 {
		outcome = "removed"
	}
	r.removals.WithLabelValues(outcome).Inc()
	r.removedNodes.Add(float64(nodes))
}

// Failure counts a failure in the named stage (generate, inject, remove, write).
func (r *Recorder) Failure(stage string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(stage).Inc()
}

// BytesWritten adds n persisted bytes for the named sink.
func (r *Recorder) BytesWritten(sink string, n int64) {
	if r == nil || n <= 0 {
		return
	}
	r.bytes.WithLabelValues(sink).Add(float64(n))
}

// ObserveRun stores the wall time of a generation run.
func (r *Recorder) ObserveRun(d time.Duration) {
	if r == nil {
		return
	}
	r.runSeconds.Set(d.Seconds())
}

// WriteTextfile dumps the registry to path in the Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
