package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mccis"
)

const metricsNamespace = "mccis"

// searchMetrics records search outcomes in a private registry, written out
// in the text exposition format for node_exporter's textfile collector.
type searchMetrics struct {
	registry *prometheus.Registry

	duration *prometheus.HistogramVec
	nodes    *prometheus.CounterVec
	score    *prometheus.GaugeVec
	cutoffs  *prometheus.CounterVec
}

func newSearchMetrics() *searchMetrics {
	labels := []string{"strategy", "criterion"}
	m := &searchMetrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of one MCCIS search.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, labels),
		nodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "search_nodes_total",
			Help:      "Search-tree expansions.",
		}, labels),
		score: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "search_score",
			Help:      "Score of the last result.",
		}, labels),
		cutoffs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "search_cutoffs_total",
			Help:      "Searches stopped by a time or node limit.",
		}, labels),
	}
	m.registry.MustRegister(m.duration, m.nodes, m.score, m.cutoffs)

	return m
}

func (m *searchMetrics) observe(res *mccis.Result) {
	l := prometheus.Labels{"strategy": res.Strategy, "criterion": res.Criterion}
	m.duration.With(l).Observe(res.Elapsed.Seconds())
	m.nodes.With(l).Add(float64(res.Nodes))
	m.score.With(l).Set(float64(res.Score))
	if !res.Complete {
		m.cutoffs.With(l).Inc()
	}
}

func (m *searchMetrics) writeFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}
