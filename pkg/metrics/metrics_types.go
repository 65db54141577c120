package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for an analysis run
type Registry struct {
	// Input Metrics
	InputLinesTotal   prometheus.Counter
	InputSkippedTotal prometheus.Counter
	InputEdgesTotal   prometheus.Counter

	// Graph Metrics
	GraphVertices  prometheus.Gauge
	GraphArcs      prometheus.Gauge
	GraphSelfLoops prometheus.Gauge
	GraphSinks     prometheus.Gauge

	// Traversal Metrics
	SourcesTraversedTotal prometheus.Counter
	ReachablePairsTotal   prometheus.Counter
	SourceReach           prometheus.Histogram
	AverageDistance       prometheus.Gauge
	MaxDistance           prometheus.Gauge

	// Run Metrics
	StageDuration    *prometheus.HistogramVec
	RunsTotal        *prometheus.CounterVec
	LastRunTimestamp prometheus.Gauge

	// System Metrics
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initInputMetrics()
	r.initGraphMetrics()
	r.initTraversalMetrics()
	r.initRunMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
