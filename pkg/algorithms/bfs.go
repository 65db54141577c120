package algorithms

import (
	"fmt"

	"github.com/dd0wney/cluso-avgdist/pkg/graph"
	"github.com/dd0wney/cluso-avgdist/pkg/pools"
)

// Traversal is the outcome of a breadth-first search from one source.
type Traversal struct {
	Source uint64
	Order  []uint64       // discovery order, source first; order within a level is unspecified
	Depth  map[uint64]int // vertex -> hop count at first discovery
}

// BFS explores g from source along outgoing arcs. Each vertex is recorded
// once, at the depth it was first discovered, which is its shortest hop
// distance from source.
func BFS(g *graph.Digraph, source uint64) (*Traversal, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("bfs from %d: %w", source, graph.ErrVertexNotFound)
	}

	t := &Traversal{
		Source: source,
		Order:  make([]uint64, 0, 1),
		Depth:  make(map[uint64]int),
	}
	walk(g, source, func(id uint64, hop int) {
		t.Order = append(t.Order, id)
		t.Depth[id] = hop
	})
	return t, nil
}

// walk runs a level-synchronous BFS from source and calls visit once per
// reachable vertex, source included at hop 0. Frontiers and the visited set
// come from pools since walk runs once per vertex of the graph.
func walk(g *graph.Digraph, source uint64, visit func(id uint64, hop int)) {
	visited := pools.GetVisited()
	defer pools.PutVisited(visited)

	visited[source] = struct{}{}
	visit(source, 0)

	frontier := append(pools.GetUint64s(1), source)
	next := pools.GetUint64s(g.OutDegree(source))

	for hop := 1; len(frontier) > 0; hop++ {
		for _, id := range frontier {
			g.ForEachNeighbor(id, func(neighborID uint64) {
				if _, seen := visited[neighborID]; seen {
					return
				}
				visited[neighborID] = struct{}{}
				visit(neighborID, hop)
				next = append(next, neighborID)
			})
		}
		frontier, next = next, frontier[:0]
	}

	pools.PutUint64s(frontier)
	pools.PutUint64s(next)
}
