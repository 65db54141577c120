package pools

import (
	"sync"
)

// Size classes for pooled uint64 slices.
const (
	SmallFrontier  = 64
	MediumFrontier = 1024
	LargeFrontier  = 16384

	// MaxPooledFrontier is the largest capacity returned to a pool.
	MaxPooledFrontier = 1 << 20
)

// Uint64Pool pools slices of uint64 used as BFS frontiers.
type Uint64Pool struct {
	small  sync.Pool
	medium sync.Pool
	large  sync.Pool
}

// NewUint64Pool creates a new uint64 slice pool.
func NewUint64Pool() *Uint64Pool {
	return &Uint64Pool{
		small:  sync.Pool{New: newSlice(SmallFrontier)},
		medium: sync.Pool{New: newSlice(MediumFrontier)},
		large:  sync.Pool{New: newSlice(LargeFrontier)},
	}
}

func newSlice(capacity int) func() any {
	return func() any {
		s := make([]uint64, 0, capacity)
		return &s
	}
}

// class returns the pool serving capacity c, or nil when c is above every class.
func (p *Uint64Pool) class(c int) *sync.Pool {
	switch {
	case c <= SmallFrontier:
		return &p.small
	case c <= MediumFrontier:
		return &p.medium
	case c <= LargeFrontier:
		return &p.large
	default:
		return nil
	}
}

// Get returns an empty uint64 slice with at least the requested capacity.
func (p *Uint64Pool) Get(size int) []uint64 {
	pool := p.class(size)
	if pool == nil {
		return make([]uint64, 0, size)
	}

	sp, ok := pool.Get().(*[]uint64)
	if !ok || cap(*sp) < size {
		return make([]uint64, 0, size)
	}
	return (*sp)[:0]
}

// Put returns a uint64 slice to the pool. Slices that grew past the largest
// class are kept there as long as they stay under MaxPooledFrontier.
func (p *Uint64Pool) Put(s []uint64) {
	c := cap(s)
	if c == 0 || c > MaxPooledFrontier {
		return
	}

	s = s[:0]
	pool := p.class(c)
	if pool == nil {
		pool = &p.large
	}
	pool.Put(&s)
}

// Default global uint64 pool
var defaultUint64Pool = NewUint64Pool()

// GetUint64s returns a uint64 slice from the default pool.
func GetUint64s(size int) []uint64 {
	return defaultUint64Pool.Get(size)
}

// PutUint64s returns a uint64 slice to the default pool.
func PutUint64s(s []uint64) {
	defaultUint64Pool.Put(s)
}
