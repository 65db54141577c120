// Package pools provides object pooling for reducing GC pressure.
//
// A full aggregation runs one BFS per vertex, so per-traversal scratch
// space is reused instead of reallocated:
//
//   - Uint64Pool: size-class pooling for frontier slices
//   - VisitedPool: pooling for visited sets
package pools
