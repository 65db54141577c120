package pools

import (
	"sync"
)

// MaxPooledVisited bounds the size of a visited set kept for reuse.
const MaxPooledVisited = 1 << 22

// VisitedPool pools map[uint64]struct{} sets used to mark discovered vertices.
// A cleared map keeps its buckets, so reuse across traversals of the same
// graph avoids regrowing it.
type VisitedPool struct {
	pool sync.Pool
}

// NewVisitedPool creates a new visited set pool.
func NewVisitedPool() *VisitedPool {
	return &VisitedPool{
		pool: sync.Pool{
			New: func() any {
				return make(map[uint64]struct{}, 64)
			},
		},
	}
}

// Get returns an empty set from the pool.
func (p *VisitedPool) Get() map[uint64]struct{} {
	m, ok := p.pool.Get().(map[uint64]struct{})
	if !ok {
		return make(map[uint64]struct{}, 64)
	}
	clear(m)
	return m
}

// Put returns a set to the pool.
func (p *VisitedPool) Put(m map[uint64]struct{}) {
	if m == nil || len(m) > MaxPooledVisited {
		return
	}
	p.pool.Put(m)
}

// Default global visited set pool
var defaultVisitedPool = NewVisitedPool()

// GetVisited returns a visited set from the default pool.
func GetVisited() map[uint64]struct{} {
	return defaultVisitedPool.Get()
}

// PutVisited returns a visited set to the default pool.
func PutVisited(m map[uint64]struct{}) {
	defaultVisitedPool.Put(m)
}
