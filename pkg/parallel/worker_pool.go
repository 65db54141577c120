package parallel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// WorkerPool manages a pool of worker goroutines
type WorkerPool struct {
	workers   int
	taskQueue chan func()
	wg        sync.WaitGroup
	once      sync.Once
	mu        sync.RWMutex // Protects taskQueue from concurrent close during send
	closed    bool         // Protected by mu
	panics    atomic.Int64
}

var (
	// ErrTooManyWorkers is returned when the worker count exceeds the maximum allowed.
	ErrTooManyWorkers = errors.New("worker count exceeds maximum")

	// ErrPoolClosed is returned when work is offered to a closed pool.
	ErrPoolClosed = errors.New("worker pool is closed")

	// ErrTaskPanicked is returned by ForEach when one or more tasks panicked.
	ErrTaskPanicked = errors.New("task panicked")
)

// MaxWorkers is the maximum number of workers allowed in a pool.
const MaxWorkers = 1 << 16

// NewWorkerPool creates a new worker pool with specified number of workers.
// Counts <= 0 mean one worker.
func NewWorkerPool(workers int) (*WorkerPool, error) {
	if workers <= 0 {
		workers = 1
	}
	if workers > MaxWorkers {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyWorkers, workers, MaxWorkers)
	}

	pool := &WorkerPool{
		workers:   workers,
		taskQueue: make(chan func(), workers*2),
	}

	pool.start()
	return pool, nil
}

// Workers returns the number of worker goroutines.
func (wp *WorkerPool) Workers() int {
	return wp.workers
}

// Panics returns how many submitted tasks panicked so far.
func (wp *WorkerPool) Panics() int64 {
	return wp.panics.Load()
}

func (wp *WorkerPool) start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.run(task)
	}
}

// run executes task, keeping the worker alive if it panics.
func (wp *WorkerPool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			wp.panics.Add(1)
		}
	}()
	task()
}

// Submit adds a task to the worker pool
// Returns false if the pool is closed, true if task was submitted
func (wp *WorkerPool) Submit(task func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return false
	}

	wp.taskQueue <- task
	return true
}

// ForEach runs fn(i) for every i in [0, n) on the pool and waits for the
// submitted calls to finish. It stops submitting once ctx is done.
func (wp *WorkerPool) ForEach(ctx context.Context, n int, fn func(i int)) error {
	var (
		batch    sync.WaitGroup
		panicked atomic.Int64
	)

	var submitErr error
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			submitErr = err
			break
		}

		idx := i
		batch.Add(1)
		ok := wp.Submit(func() {
			defer batch.Done()
			defer func() {
				if r := recover(); r != nil {
					panicked.Add(1)
					wp.panics.Add(1)
				}
			}()
			fn(idx)
		})
		if !ok {
			batch.Done()
			submitErr = ErrPoolClosed
			break
		}
	}

	batch.Wait()

	if submitErr != nil {
		return submitErr
	}
	if p := panicked.Load(); p > 0 {
		return fmt.Errorf("%w: %d of %d tasks", ErrTaskPanicked, p, n)
	}
	return nil
}

// Close shuts down the worker pool and waits for queued tasks to drain.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskQueue)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}
