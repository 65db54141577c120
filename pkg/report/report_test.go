package report

import (
	"strings"
	"testing"

	"github.com/dd0wney/cluso-avgdist/pkg/algorithms"
	"github.com/dd0wney/cluso-avgdist/pkg/edgelist"
	"github.com/dd0wney/cluso-avgdist/pkg/graph"
)

func TestLine(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{0, "Average distance between pairs of vertices: 0.00"},
		{2, "Average distance between pairs of vertices: 2.00"},
		{1.25, "Average distance between pairs of vertices: 1.25"},
		{4.0 / 3, "Average distance between pairs of vertices: 1.33"},
		{2.005, "Average distance between pairs of vertices: 2.00"}, // binary 2.00499...
		{1234.5678, "Average distance between pairs of vertices: 1234.57"},
	}

	for _, tt := range tests {
		if got := Line(tt.avg); got != tt.want {
			t.Errorf("Line(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}

func TestSummaryRender(t *testing.T) {
	s := Summary{
		RunID: "run-1",
		Input: "edges.txt",
		Parsed: &edgelist.Result{
			Lines:   6,
			Skipped: 2,
			Digest:  "0123456789abcdef0123456789abcdef",
		},
		Graph:  graph.Statistics{VertexCount: 5, EdgeCount: 4, SinkCount: 1},
		Result: algorithms.Result{Pairs: 10, TotalDistance: 20, MaxDistance: 4, Average: 2},
	}

	out := s.Render()
	for _, want := range []string{"avgdist summary", "edges.txt", "run-1", "0123456789abcdef", "2.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "0123456789abcdef0123") {
		t.Error("Render() should shorten the digest")
	}
}

func TestSummaryRender_NoParsed(t *testing.T) {
	out := Summary{Input: "x"}.Render()
	if strings.Contains(out, "skipped") {
		t.Errorf("Render() without parse result should omit line counts:\n%s", out)
	}
}
