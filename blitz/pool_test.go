package blitz

import (
	"sync/atomic"
	"testing"
)

func freshPool(t *testing.T, workers int) *Pool {
	t.Helper()
	p := &Pool{}
	p.init(workers)
	t.Cleanup(p.Teardown)
	return p
}

func TestInitIsIdempotent(t *testing.T) {
	p := freshPool(t, 4)
	if got := p.NumWorkers(); got != 4 {
		t.Fatalf("NumWorkers() = %d, want 4", got)
	}
	p.init(8) // second init on an initialized pool must be a no-op
	if got := p.NumWorkers(); got != 4 {
		t.Fatalf("NumWorkers() after second init = %d, want 4 (no resize)", got)
	}
}

func TestParallelForCoversEveryIndex(t *testing.T) {
	p := freshPool(t, 4)

	n := 10_000
	seen := make([]int32, n)
	p.ParallelFor(n, 97, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})
	for i, v := range seen {
		if v != 1 {
			t.Fatalf("index %d visited %d times, want exactly 1", i, v)
		}
	}
}

func TestParallelForEmptyRange(t *testing.T) {
	p := freshPool(t, 4)
	called := false
	p.ParallelFor(0, 16, func(start, end int) { called = true })
	if called {
		t.Error("ParallelFor(0, ...) invoked fn, want no calls")
	}
}

func TestTeardownThenReinit(t *testing.T) {
	p := &Pool{}
	p.init(2)
	p.Teardown()
	if p.Initialized() {
		t.Fatal("Initialized() = true after Teardown")
	}
	p.Teardown() // second teardown on an uninitialized pool must be a no-op
	p.init(2)
	defer p.Teardown()
	if !p.Initialized() {
		t.Fatal("Initialized() = false after re-init")
	}
}

func TestParallelForUnevenWorkCompletes(t *testing.T) {
	p := freshPool(t, 4)

	n := 4000
	results := make([]int, n)
	p.ParallelFor(n, 50, func(start, end int) {
		for i := start; i < end; i++ {
			// Per-element cost varies with i. ParallelFor turns these 4000
			// elements into at most 4 tasks; whichever worker (owner or
			// thief) runs a task, every element must still be written once.
			busy := i % 997
			for j := 0; j < busy; j++ {
				busy--
			}
			results[i] = i * 2
		}
	})
	for i, v := range results {
		if v != i*2 {
			t.Fatalf("results[%d] = %d, want %d", i, v, i*2)
		}
	}
}
