package algorithms

import (
	"context"

	"github.com/dd0wney/cluso-avgdist/pkg/graph"
	"github.com/dd0wney/cluso-avgdist/pkg/parallel"
)

// SourceStats holds the shortest-path totals for one BFS source.
type SourceStats struct {
	Source   uint64
	Sum      uint64 // sum of hop counts to every reachable t != source
	Pairs    uint64 // number of reachable t != source
	MaxDepth int
}

// Result is the all-sources aggregate.
type Result struct {
	Sources       int
	Pairs         uint64
	TotalDistance uint64
	MaxDistance   int // longest shortest path among reachable pairs
	Average       float64
}

// Options configures Compute.
type Options struct {
	// Workers > 1 spreads sources over a worker pool.
	Workers int

	// OnSource, if set, is called after each source is traversed. It may be
	// called concurrently when Workers > 1.
	OnSource func(SourceStats)
}

// SourceDistances runs one BFS from source and totals the distances to every
// other reachable vertex. Self-loops and the source itself are never counted.
func SourceDistances(g *graph.Digraph, source uint64) SourceStats {
	stats := SourceStats{Source: source}
	walk(g, source, func(id uint64, hop int) {
		if id == source {
			return
		}
		stats.Sum += uint64(hop)
		stats.Pairs++
		if hop > stats.MaxDepth {
			stats.MaxDepth = hop
		}
	})
	return stats
}

func (r *Result) add(s SourceStats) {
	r.Sources++
	r.Pairs += s.Pairs
	r.TotalDistance += s.Sum
	if s.MaxDepth > r.MaxDistance {
		r.MaxDistance = s.MaxDepth
	}
}

func (r *Result) finish() {
	if r.Pairs == 0 {
		r.Average = 0
		return
	}
	r.Average = float64(r.TotalDistance) / float64(r.Pairs)
}

// AverageDistance returns the mean shortest-path distance over all ordered
// reachable pairs (s, t), s != t. A graph without such pairs yields 0.
func AverageDistance(g *graph.Digraph) Result {
	// Sequential with a background context: Compute cannot fail here.
	res, _ := Compute(context.Background(), g, Options{})
	return res
}

// ParallelAverageDistance computes the same result as AverageDistance with
// sources spread across workers.
func ParallelAverageDistance(ctx context.Context, g *graph.Digraph, workers int) (Result, error) {
	return Compute(ctx, g, Options{Workers: workers})
}

// Compute traverses from every vertex of g and reduces the per-source totals.
func Compute(ctx context.Context, g *graph.Digraph, opts Options) (Result, error) {
	sources := g.Vertices()

	var (
		per []SourceStats
		err error
	)
	if opts.Workers > 1 {
		per, err = traverseParallel(ctx, g, sources, opts)
	} else {
		per, err = traverseSequential(ctx, g, sources, opts)
	}
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, s := range per {
		res.add(s)
	}
	res.finish()
	return res, nil
}

func traverseSequential(ctx context.Context, g *graph.Digraph, sources []uint64, opts Options) ([]SourceStats, error) {
	per := make([]SourceStats, len(sources))
	for i, s := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		per[i] = SourceDistances(g, s)
		if opts.OnSource != nil {
			opts.OnSource(per[i])
		}
	}
	return per, nil
}

// traverseParallel gives every source its own result slot, so tasks share
// nothing but the read-only graph.
func traverseParallel(ctx context.Context, g *graph.Digraph, sources []uint64, opts Options) ([]SourceStats, error) {
	pool, err := parallel.NewWorkerPool(opts.Workers)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	per := make([]SourceStats, len(sources))
	err = pool.ForEach(ctx, len(sources), func(i int) {
		per[i] = SourceDistances(g, sources[i])
		if opts.OnSource != nil {
			opts.OnSource(per[i])
		}
	})
	if err != nil {
		return nil, err
	}
	return per, nil
}
