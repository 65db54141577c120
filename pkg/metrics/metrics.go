package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dd0wney/cluso-avgdist/pkg/algorithms"
	"github.com/dd0wney/cluso-avgdist/pkg/edgelist"
	"github.com/dd0wney/cluso-avgdist/pkg/graph"
)

// RecordInput records the line counters of a parsed edge list
func (r *Registry) RecordInput(res *edgelist.Result) {
	r.InputLinesTotal.Add(float64(res.Lines))
	r.InputSkippedTotal.Add(float64(res.Skipped))
	r.InputEdgesTotal.Add(float64(len(res.Edges)))
}

// RecordGraph records the size of the built graph
func (r *Registry) RecordGraph(stats graph.Statistics) {
	r.GraphVertices.Set(float64(stats.VertexCount))
	r.GraphArcs.Set(float64(stats.EdgeCount))
	r.GraphSelfLoops.Set(float64(stats.SelfLoops))
	r.GraphSinks.Set(float64(stats.SinkCount))
}

// RecordSource records one finished BFS. Safe for concurrent use.
func (r *Registry) RecordSource(s algorithms.SourceStats) {
	r.SourcesTraversedTotal.Inc()
	r.ReachablePairsTotal.Add(float64(s.Pairs))
	r.SourceReach.Observe(float64(s.Pairs))
}

// RecordResult records the final aggregate
func (r *Registry) RecordResult(res algorithms.Result) {
	r.AverageDistance.Set(res.Average)
	r.MaxDistance.Set(float64(res.MaxDistance))
}

// RecordStage records how long a pipeline stage took
func (r *Registry) RecordStage(stage string, duration time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordRun records the outcome of a run and stamps its finish time
func (r *Registry) RecordRun(status string) {
	r.RunsTotal.WithLabelValues(status).Inc()
	r.LastRunTimestamp.SetToCurrentTime()
}

// UpdateSystemMetrics samples goroutine and memory statistics
func (r *Registry) UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
	r.MemorySysBytes.Set(float64(m.Sys))
}

// WriteTextfile writes every metric in Prometheus text format to path,
// for pickup by a node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
