package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initInputMetrics() {
	r.InputLinesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "avgdist_input_lines_total",
			Help: "Lines read from the edge list",
		},
	)

	r.InputSkippedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "avgdist_input_skipped_lines_total",
			Help: "Malformed edge list lines that were skipped",
		},
	)

	r.InputEdgesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "avgdist_input_edges_total",
			Help: "Valid edges parsed from the edge list, duplicates included",
		},
	)
}

func (r *Registry) initGraphMetrics() {
	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "avgdist_graph_vertices",
			Help: "Number of vertices in the built graph",
		},
	)

	r.GraphArcs = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "avgdist_graph_arcs",
			Help: "Number of distinct directed arcs in the built graph",
		},
	)

	r.GraphSelfLoops = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "avgdist_graph_self_loops",
			Help: "Number of self-loop arcs in the built graph",
		},
	)

	r.GraphSinks = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "avgdist_graph_sink_vertices",
			Help: "Vertices without outgoing arcs",
		},
	)
}
