package algorithms

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/dd0wney/cluso-avgdist/pkg/edgelist"
	"github.com/dd0wney/cluso-avgdist/pkg/graph"
)

func TestSourceDistances_Path(t *testing.T) {
	g := pathGraph(5)

	tests := []struct {
		source uint64
		sum    uint64
		pairs  uint64
		max    int
	}{
		{1, 10, 4, 4},
		{2, 6, 3, 3},
		{3, 3, 2, 2},
		{4, 1, 1, 1},
		{5, 0, 0, 0},
	}

	for _, tt := range tests {
		got := SourceDistances(g, tt.source)
		if got.Sum != tt.sum || got.Pairs != tt.pairs || got.MaxDepth != tt.max {
			t.Errorf("SourceDistances(%d) = %+v, want sum=%d pairs=%d max=%d",
				tt.source, got, tt.sum, tt.pairs, tt.max)
		}
	}
}

func TestAverageDistance_Path(t *testing.T) {
	res := AverageDistance(pathGraph(5))

	if res.TotalDistance != 20 {
		t.Errorf("TotalDistance = %d, want 20", res.TotalDistance)
	}
	if res.Pairs != 10 {
		t.Errorf("Pairs = %d, want 10", res.Pairs)
	}
	if res.Average != 2.0 {
		t.Errorf("Average = %v, want 2.0", res.Average)
	}
	if res.Sources != 5 {
		t.Errorf("Sources = %d, want 5", res.Sources)
	}
	if res.MaxDistance != 4 {
		t.Errorf("MaxDistance = %d, want 4", res.MaxDistance)
	}
}

func TestAverageDistance_NoPairs(t *testing.T) {
	isolated := graph.New()
	isolated.AddVertex(1)
	isolated.AddVertex(2)

	tests := []struct {
		name string
		g    *graph.Digraph
	}{
		{"empty graph", graph.New()},
		{"single vertex", func() *graph.Digraph { g := graph.New(); g.AddVertex(9); return g }()},
		{"no arcs", isolated},
		{"only self loop", graph.Build([]edgelist.Edge{{1, 1}})},
		{"many self loops", graph.Build([]edgelist.Edge{{1, 1}, {2, 2}, {3, 3}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := AverageDistance(tt.g)
			if res.Average != 0 || res.Pairs != 0 {
				t.Errorf("Expected average 0 with no pairs, got %+v", res)
			}
		})
	}
}

func TestAverageDistance_SelfLoopsIgnored(t *testing.T) {
	withLoops := graph.Build([]edgelist.Edge{{1, 1}, {1, 2}, {2, 2}, {2, 3}})
	without := graph.Build([]edgelist.Edge{{1, 2}, {2, 3}})

	a, b := AverageDistance(withLoops), AverageDistance(without)
	if a.Pairs != b.Pairs || a.TotalDistance != b.TotalDistance {
		t.Errorf("Self-loops changed the result: with=%+v without=%+v", a, b)
	}
}

func TestAverageDistance_DisconnectedComponents(t *testing.T) {
	// 1->2 and 10->11->12; no arcs between components.
	g := graph.Build([]edgelist.Edge{{1, 2}, {10, 11}, {11, 12}})

	res := AverageDistance(g)
	// pairs: (1,2)=1, (10,11)=1, (10,12)=2, (11,12)=1
	if res.Pairs != 4 || res.TotalDistance != 5 {
		t.Errorf("Expected pairs=4 total=5, got %+v", res)
	}
	if math.Abs(res.Average-1.25) > 1e-12 {
		t.Errorf("Average = %v, want 1.25", res.Average)
	}
}

func TestAverageDistance_Cycle(t *testing.T) {
	// Directed 3-cycle: each source reaches the others at 1 and 2.
	g := graph.Build([]edgelist.Edge{{1, 2}, {2, 3}, {3, 1}})

	res := AverageDistance(g)
	if res.Pairs != 6 || res.TotalDistance != 9 {
		t.Errorf("Expected pairs=6 total=9, got %+v", res)
	}
	if res.Average != 1.5 {
		t.Errorf("Average = %v, want 1.5", res.Average)
	}
}

func TestAverageDistance_DuplicateEdges(t *testing.T) {
	a := AverageDistance(graph.Build([]edgelist.Edge{{1, 2}, {2, 3}}))
	b := AverageDistance(graph.Build([]edgelist.Edge{{1, 2}, {1, 2}, {2, 3}, {2, 3}}))
	if a != b {
		t.Errorf("Duplicate edges changed the result: %+v vs %+v", a, b)
	}
}

func TestParallelAverageDistance_MatchesSequential(t *testing.T) {
	g := graph.Build([]edgelist.Edge{
		{1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 5}, {5, 6}, {6, 4}, {7, 7}, {8, 1}, {100, 200},
	})

	want := AverageDistance(g)
	for _, workers := range []int{2, 4, 16} {
		got, err := ParallelAverageDistance(context.Background(), g, workers)
		if err != nil {
			t.Fatalf("ParallelAverageDistance(%d) failed: %v", workers, err)
		}
		if got != want {
			t.Errorf("workers=%d: got %+v, want %+v", workers, got, want)
		}
	}
}

func TestCompute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		_, err := Compute(ctx, pathGraph(10), Options{Workers: workers})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: expected context.Canceled, got %v", workers, err)
		}
	}
}

func TestCompute_OnSource(t *testing.T) {
	for _, workers := range []int{1, 3} {
		var calls, pairs atomic.Uint64
		_, err := Compute(context.Background(), pathGraph(5), Options{
			Workers: workers,
			OnSource: func(s SourceStats) {
				calls.Add(1)
				pairs.Add(s.Pairs)
			},
		})
		if err != nil {
			t.Fatalf("Compute failed: %v", err)
		}
		if calls.Load() != 5 || pairs.Load() != 10 {
			t.Errorf("workers=%d: OnSource calls=%d pairs=%d, want 5 and 10", workers, calls.Load(), pairs.Load())
		}
	}
}

func BenchmarkAverageDistance(b *testing.B) {
	g := pathGraph(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AverageDistance(g)
	}
}
