// Package metrics exposes Prometheus instrumentation for the road-network
// analysis pipeline.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph Metrics
	GraphNodesTotal prometheus.Gauge
	GraphEdgesTotal prometheus.Gauge

	// Analysis Metrics
	AnalysisRunsTotal     *prometheus.CounterVec
	AnalysisStageDuration *prometheus.HistogramVec
	BridgesFound          prometheus.Gauge
	ArticulationPoints    prometheus.Gauge

	// Query Metrics
	ShortestPathQueriesTotal *prometheus.CounterVec
	ImpactSimulationsTotal   prometheus.Counter

	// Traffic Metrics
	TrafficAgentsRouted  prometheus.Counter
	TrafficSaturatedEdge prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initGraphMetrics()
	r.initAnalysisMetrics()
	r.initQueryMetrics()
	r.initTrafficMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
