package graph

import (
	"errors"
	"maps"
	"slices"

	"github.com/dd0wney/cluso-avgdist/pkg/edgelist"
)

// ErrVertexNotFound is returned when a lookup names an id that is not in the graph.
var ErrVertexNotFound = errors.New("vertex not found")

// Digraph is a directed graph keyed by the raw vertex ids from the input.
// Ids may be sparse; neighbor sets have set semantics.
type Digraph struct {
	adjacency map[uint64]map[uint64]struct{}
	arcs      uint64
}

// Statistics summarises the size of a built graph.
type Statistics struct {
	VertexCount uint64
	EdgeCount   uint64 // distinct arcs, self-loops included
	SelfLoops   uint64
	SinkCount   uint64 // vertices with no outgoing arcs
}

// New returns an empty graph.
func New() *Digraph {
	return &Digraph{adjacency: make(map[uint64]map[uint64]struct{})}
}

// Build creates a graph from edges. Both endpoints of every edge become vertices.
func Build(edges []edgelist.Edge) *Digraph {
	g := New()
	for _, e := range edges {
		g.AddEdge(e.Source, e.Target)
	}
	return g
}

// AddVertex inserts id if it is absent.
func (g *Digraph) AddVertex(id uint64) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[uint64]struct{})
	}
}

// AddEdge records the arc src->dst, inserting missing endpoints.
// Adding an existing arc is a no-op.
func (g *Digraph) AddEdge(src, dst uint64) {
	g.AddVertex(src)
	g.AddVertex(dst)

	if _, exists := g.adjacency[src][dst]; exists {
		return
	}
	g.adjacency[src][dst] = struct{}{}
	g.arcs++
}

// HasVertex reports whether id is a vertex.
func (g *Digraph) HasVertex(id uint64) bool {
	_, ok := g.adjacency[id]
	return ok
}

// HasEdge reports whether the arc src->dst exists.
func (g *Digraph) HasEdge(src, dst uint64) bool {
	_, ok := g.adjacency[src][dst]
	return ok
}

// Neighbors returns the out-neighbors of id in ascending order.
func (g *Digraph) Neighbors(id uint64) ([]uint64, error) {
	out, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	return slices.Sorted(maps.Keys(out)), nil
}

// ForEachNeighbor calls fn for every out-neighbor of id, in no particular order.
func (g *Digraph) ForEachNeighbor(id uint64, fn func(uint64)) {
	for n := range g.adjacency[id] {
		fn(n)
	}
}

// OutDegree returns the number of distinct out-neighbors of id.
func (g *Digraph) OutDegree(id uint64) int {
	return len(g.adjacency[id])
}

// Vertices returns every vertex id in ascending order.
func (g *Digraph) Vertices() []uint64 {
	return slices.Sorted(maps.Keys(g.adjacency))
}

// VertexCount returns the number of vertices.
func (g *Digraph) VertexCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of distinct arcs.
func (g *Digraph) EdgeCount() uint64 {
	return g.arcs
}

// GetStatistics walks the graph once and returns its size counters.
func (g *Digraph) GetStatistics() Statistics {
	stats := Statistics{
		VertexCount: uint64(len(g.adjacency)),
		EdgeCount:   g.arcs,
	}
	for id, out := range g.adjacency {
		if len(out) == 0 {
			stats.SinkCount++
		}
		if _, loop := out[id]; loop {
			stats.SelfLoops++
		}
	}
	return stats
}

// Equal reports whether g and other have the same vertices and arcs.
func (g *Digraph) Equal(other *Digraph) bool {
	if len(g.adjacency) != len(other.adjacency) || g.arcs != other.arcs {
		return false
	}
	for id, out := range g.adjacency {
		otherOut, ok := other.adjacency[id]
		if !ok || !maps.Equal(out, otherOut) {
			return false
		}
	}
	return true
}
