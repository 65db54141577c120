package pools

import (
	"sync"
	"testing"
)

func TestUint64Pool_Get(t *testing.T) {
	pool := NewUint64Pool()

	tests := []struct {
		name   string
		size   int
		minCap int
	}{
		{"zero", 0, 0},
		{"small", 10, 10},
		{"small_exact", SmallFrontier, SmallFrontier},
		{"medium", 500, 500},
		{"large", LargeFrontier, LargeFrontier},
		{"oversized", LargeFrontier + 1, LargeFrontier + 1}, // Allocated directly
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := pool.Get(tt.size)
			if len(s) != 0 {
				t.Errorf("Get(%d) length = %d, want 0", tt.size, len(s))
			}
			if cap(s) < tt.minCap {
				t.Errorf("Get(%d) capacity = %d, want >= %d", tt.size, cap(s), tt.minCap)
			}
		})
	}
}

func TestUint64Pool_PutAndReuse(t *testing.T) {
	pool := NewUint64Pool()

	for i := 0; i < 10; i++ {
		s := pool.Get(32)
		s = append(s, 1, 2, 3)
		pool.Put(s)
	}

	s := pool.Get(32)
	if len(s) != 0 {
		t.Errorf("After Put, Get returned slice with length %d, want 0", len(s))
	}
}

func TestUint64Pool_GrownSlice(t *testing.T) {
	pool := NewUint64Pool()

	// Frontiers grow past every class during a traversal.
	grown := make([]uint64, 0, LargeFrontier*4)
	pool.Put(grown)

	s := pool.Get(LargeFrontier)
	if cap(s) < LargeFrontier {
		t.Errorf("capacity = %d, want >= %d", cap(s), LargeFrontier)
	}
}

func TestUint64Pool_OversizedNotPooled(t *testing.T) {
	pool := NewUint64Pool()
	pool.Put(make([]uint64, 0, MaxPooledFrontier+1)) // Should not panic
	pool.Put(nil)
}

func TestVisitedPool_Cleared(t *testing.T) {
	pool := NewVisitedPool()

	m := pool.Get()
	m[1] = struct{}{}
	m[2] = struct{}{}
	pool.Put(m)

	for i := 0; i < 5; i++ {
		got := pool.Get()
		if len(got) != 0 {
			t.Fatalf("Get() returned set with %d entries, want 0", len(got))
		}
		pool.Put(got)
	}
}

func TestVisitedPool_NilPut(t *testing.T) {
	pool := NewVisitedPool()
	pool.Put(nil) // Should not panic
	if pool.Get() == nil {
		t.Error("Get() returned nil map")
	}
}

func TestDefaultPools(t *testing.T) {
	s := GetUint64s(8)
	s = append(s, 7)
	PutUint64s(s)

	v := GetVisited()
	v[7] = struct{}{}
	PutVisited(v)

	if len(GetVisited()) != 0 {
		t.Error("Default visited pool returned a dirty set")
	}
}

func TestPools_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := GetUint64s(j)
				s = append(s, uint64(i), uint64(j))
				PutUint64s(s)

				v := GetVisited()
				v[uint64(j)] = struct{}{}
				PutVisited(v)
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkVisitedPool(b *testing.B) {
	for i := 0; i < b.N; i++ {
		v := GetVisited()
		for j := uint64(0); j < 256; j++ {
			v[j] = struct{}{}
		}
		PutVisited(v)
	}
}
