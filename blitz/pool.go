// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package blitz is the kernel tree's work-stealing execution pool. It is a
// single process-wide pool: lazily created by the first kernel call that
// decides a length is worth parallelizing, torn down explicitly, and
// recreated lazily again afterwards.
//
// Each worker owns a deque; idle workers steal from a random victim before
// parking on a condition variable. Scheduling is cooperative within a
// worker goroutine (a worker runs a task to completion before taking the
// next one) and tasks within one ParallelFor batch never depend on each
// other, so the batch only needs a countdown latch, not a full scheduler.
package blitz

import (
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

const stealRetries = 4

// Pool is a lazily-initialized, fixed-size work-stealing thread pool.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	workers []*worker
	closed  bool
	wg      sync.WaitGroup // one Done per worker goroutine on exit; Teardown joins on this

	initialized  atomic.Bool
	autoDetected atomic.Bool
}

type worker struct {
	idx  int
	pool *Pool
	dq   deque
}

// global is the single process-wide pool instance. maxThreads is read only
// at Init time; changing it after a pool exists does not resize that pool
// (§9's open question resolves this as "no resize until Teardown").
var (
	global     = &Pool{}
	maxThreads atomic.Int64 // 0 means auto (GOMAXPROCS)
	initFlight singleflight.Group
)

// SetMaxThreads pins the pool's worker count for the next lazy Init.
// SetMaxThreads(0) re-enables auto-detection from GOMAXPROCS.
func SetMaxThreads(k int) {
	if k < 0 {
		k = 0
	}
	maxThreads.Store(int64(k))
}

// Global returns the single process-wide pool, initializing it on first use
// with the current SetMaxThreads configuration. Concurrent callers racing to
// initialize collapse onto one singleflight call; all receive success once
// the workers are spawned.
func Global() *Pool {
	if global.initialized.Load() {
		return global
	}
	_, _, _ = initFlight.Do("init", func() (any, error) {
		global.init(int(maxThreads.Load()))
		return nil, nil
	})
	return global
}

// Init explicitly (re-)initializes the global pool and reports success.
// A second Init on an already-initialized pool is a no-op returning true.
func Init(numWorkers int) bool {
	if global.initialized.Load() {
		return true
	}
	_, _, _ = initFlight.Do("init", func() (any, error) {
		global.init(numWorkers)
		return nil, nil
	})
	return global.initialized.Load()
}

func (p *Pool) init(numWorkers int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized.Load() {
		return
	}

	auto := numWorkers <= 0
	if auto {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	p.cond = sync.NewCond(&p.mu)
	p.closed = false
	p.workers = make([]*worker, numWorkers)
	p.wg.Add(numWorkers)
	for i := range p.workers {
		w := &worker{idx: i, pool: p}
		p.workers[i] = w
		go w.run()
	}
	p.autoDetected.Store(auto)
	p.initialized.Store(true)
}

// Initialized reports whether the global pool currently has live workers,
// without triggering lazy initialization the way Global() would.
func Initialized() bool { return global.initialized.Load() }

// NumWorkers returns the number of workers, or 0 if not yet initialized.
func (p *Pool) NumWorkers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.workers)
}

// AutoDetected reports whether the worker count came from GOMAXPROCS rather
// than an explicit SetMaxThreads pin.
func (p *Pool) AutoDetected() bool { return p.autoDetected.Load() }

// Initialized reports whether the pool currently has live workers.
func (p *Pool) Initialized() bool { return p.initialized.Load() }

// Teardown joins all workers. It is the caller's responsibility to have
// drained outstanding ParallelFor batches first; Teardown waits for every
// worker to actually exit its run loop before the pool is reported
// uninitialized, so a subsequent lazy re-init never races a not-yet-exited
// worker from the previous generation. A second Teardown on an
// uninitialized pool is a no-op.
func Teardown() { global.Teardown() }

func (p *Pool) Teardown() {
	p.mu.Lock()
	if !p.initialized.Load() {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()

	// Join: block until every worker goroutine spawned by init has returned
	// from run(). initialized is still true here, so a concurrent Global()
	// or Init() call sees the pool as live and does not race a reinit in.
	p.wg.Wait()

	p.mu.Lock()
	p.initialized.Store(false)
	p.workers = nil
	p.mu.Unlock()
}

// submit round-robins a batch of tasks across worker deques and wakes any
// parked worker. It is used by ParallelFor; there is no notion of "the
// current worker's deque" here because nothing in this module calls
// ParallelFor recursively from inside a running task.
func (p *Pool) submit(tasks []task) {
	p.mu.Lock()
	n := len(p.workers)
	for i, t := range tasks {
		p.workers[i%n].dq.pushBottom(t)
	}
	p.cond.Broadcast()
	p.mu.Unlock()
}

func (w *worker) run() {
	defer w.pool.wg.Done()
	for {
		if t, ok := w.dq.popBottom(); ok {
			t.fn()
			t.barrier.Done()
			continue
		}
		if t, ok := w.steal(); ok {
			t.fn()
			t.barrier.Done()
			continue
		}
		w.pool.mu.Lock()
		if w.pool.closed {
			w.pool.mu.Unlock()
			return
		}
		// Re-check under the lock: a push may have landed between our
		// failed steal attempts and acquiring the mutex.
		if w.dq.len() > 0 {
			w.pool.mu.Unlock()
			continue
		}
		w.pool.cond.Wait()
		closed := w.pool.closed
		w.pool.mu.Unlock()
		if closed {
			return
		}
	}
}

func (w *worker) steal() (task, bool) {
	p := w.pool
	p.mu.Lock()
	n := len(p.workers)
	p.mu.Unlock()
	if n <= 1 {
		return task{}, false
	}
	for attempt := 0; attempt < stealRetries; attempt++ {
		victimIdx := rand.IntN(n)
		if victimIdx == w.idx {
			continue
		}
		p.mu.Lock()
		victim := p.workers[victimIdx]
		p.mu.Unlock()
		if victim == nil {
			continue
		}
		if t, ok := victim.dq.stealTop(); ok {
			return t, true
		}
	}
	return task{}, false
}

// ParallelFor partitions [0, n) into contiguous ranges, one task per range,
// and runs them across the pool. It blocks until every task completes.
// granularity is the number of elements each task covers, except that the
// pool never creates more tasks than there are workers: when n/granularity
// would exceed the worker count, the ranges are widened to about n/workers
// elements each, keeping per-task overhead low.
func (p *Pool) ParallelFor(n, granularity int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if granularity < 1 {
		granularity = 1
	}

	workers := p.NumWorkers()
	if workers == 0 {
		fn(0, n)
		return
	}

	numChunks := (n + granularity - 1) / granularity
	if numChunks < 1 {
		numChunks = 1
	}
	if numChunks > workers {
		// Re-derive a granularity that produces roughly one chunk per
		// worker, so the steal path has real balancing work to do only
		// when chunks are genuinely uneven in cost.
		chunkSize := (n + workers - 1) / workers
		numChunks = (n + chunkSize - 1) / chunkSize
		granularity = chunkSize
	}

	var wg sync.WaitGroup
	wg.Add(numChunks)
	tasks := make([]task, numChunks)
	for i := 0; i < numChunks; i++ {
		start := i * granularity
		end := min(start+granularity, n)
		tasks[i] = task{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	p.submit(tasks)
	wg.Wait()
}
