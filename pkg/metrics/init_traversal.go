package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTraversalMetrics() {
	r.SourcesTraversedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "avgdist_sources_traversed_total",
			Help: "BFS traversals completed",
		},
	)

	r.ReachablePairsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "avgdist_reachable_pairs_total",
			Help: "Ordered vertex pairs connected by a directed path",
		},
	)

	r.SourceReach = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "avgdist_source_reachable_vertices",
			Help:    "Vertices reachable from a single source, source excluded",
			Buckets: prometheus.ExponentialBuckets(1, 10, 7),
		},
	)

	r.AverageDistance = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "avgdist_average_distance",
			Help: "Mean shortest-path hop count over reachable pairs",
		},
	)

	r.MaxDistance = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "avgdist_max_distance",
			Help: "Longest shortest-path hop count over reachable pairs",
		},
	)
}

func (r *Registry) initRunMetrics() {
	r.StageDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "avgdist_stage_duration_seconds",
			Help:    "Duration of each pipeline stage in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 60, 600},
		},
		[]string{"stage"},
	)

	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "avgdist_runs_total",
			Help: "Analysis runs by outcome",
		},
		[]string{"status"},
	)

	r.LastRunTimestamp = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "avgdist_last_run_timestamp_seconds",
			Help: "Unix time at which the last run finished",
		},
	)
}
