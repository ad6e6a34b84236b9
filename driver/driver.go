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

// Package driver decides, for a kernel call over N elements, whether to run
// it inline or fan it out across blitz's pool, and how to recombine the
// per-chunk results. It imports blitz but not kernel: callers pass their
// kernel in as a closure, so kernels stay pool-agnostic and the pool stays
// kernel-agnostic.
package driver

import "github.com/NerdMeNot/galleon/blitz"

// ParThreshold is the element count below which an uninitialized pool is
// left alone rather than spun up for a one-off small call.
const ParThreshold = 100_000

// Granularity is the target chunk size: small enough to be L2-friendly and
// SIMD-friendly, large enough to keep per-task overhead low.
const Granularity = 4096

// ShouldParallelize mirrors §4.4's rule: only stay sequential when the pool
// has no workers yet AND the input is below the threshold. Once a pool
// exists (because some earlier, larger call spun it up) even a small call
// goes through it, since tearing down and reinitializing would cost more.
func ShouldParallelize(n int) bool {
	return blitz.Initialized() || n >= ParThreshold
}

// Partition picks how many chunks of roughly Granularity elements to split n
// into, capped at one per worker. Exported so other packages (join, groupby)
// that need custom per-chunk combine logic beyond Reduce/Map/Filter can
// still partition consistently with the driver.
func Partition(n, workers int) (numChunks, chunkSize int) {
	numChunks = (n + Granularity - 1) / Granularity
	if numChunks < 1 {
		numChunks = 1
	}
	if numChunks > workers {
		numChunks = workers
	}
	chunkSize = (n + numChunks - 1) / numChunks
	return numChunks, chunkSize
}

// Reduce runs kernel over chunks of [0, n) and folds the per-chunk partial
// results with combine, which must be associative (chunks may combine in any
// order relative to how threads happened to finish, though this
// implementation always folds in chunk index order for determinism).
func Reduce[T any](n int, kernel func(start, end int) T, combine func(a, b T) T) T {
	if !ShouldParallelize(n) {
		return kernel(0, n)
	}
	pool := blitz.Global()
	workers := pool.NumWorkers()
	if workers <= 1 {
		return kernel(0, n)
	}
	numChunks, chunkSize := Partition(n, workers)
	results := make([]T, numChunks)
	pool.ParallelFor(n, chunkSize, func(start, end int) {
		idx := start / chunkSize
		results[idx] = kernel(start, end)
	})
	acc := results[0]
	for i := 1; i < len(results); i++ {
		acc = combine(acc, results[i])
	}
	return acc
}

// Map runs kernel over chunks of [0, n) for side effect only (in-place
// arithmetic, mask construction): there is nothing to combine.
func Map(n int, kernel func(start, end int)) {
	if !ShouldParallelize(n) {
		kernel(0, n)
		return
	}
	pool := blitz.Global()
	workers := pool.NumWorkers()
	if workers <= 1 {
		kernel(0, n)
		return
	}
	_, chunkSize := Partition(n, workers)
	pool.ParallelFor(n, chunkSize, kernel)
}

// Filter runs chunkFilter over chunks of [0, n). chunkFilter writes indices
// local to [start, end) (i.e. relative to start, in [0, end-start)) into
// outLocal and returns how many it wrote. Filter adds each chunk's base
// offset to make the indices global, then concatenates chunks in order using
// an exclusive prefix sum over the per-chunk counts so the result is a
// single ascending global index list with no gaps.
func Filter(n int, chunkFilter func(start, end int, outLocal []int32) int) []int32 {
	if !ShouldParallelize(n) {
		buf := make([]int32, n)
		count := chunkFilter(0, n, buf)
		out := make([]int32, count)
		copy(out, buf[:count])
		return out
	}
	pool := blitz.Global()
	workers := pool.NumWorkers()
	if workers <= 1 {
		buf := make([]int32, n)
		count := chunkFilter(0, n, buf)
		out := make([]int32, count)
		copy(out, buf[:count])
		return out
	}

	numChunks, chunkSize := Partition(n, workers)
	counts := make([]int, numChunks)
	bufs := make([][]int32, numChunks)
	pool.ParallelFor(n, chunkSize, func(start, end int) {
		idx := start / chunkSize
		local := make([]int32, end-start)
		c := chunkFilter(start, end, local)
		for i := 0; i < c; i++ {
			local[i] += int32(start)
		}
		bufs[idx] = local[:c]
		counts[idx] = c
	})

	total := 0
	for _, c := range counts {
		total += c
	}
	out := make([]int32, total)
	offset := 0
	for i, buf := range bufs {
		copy(out[offset:], buf)
		offset += counts[i]
	}
	return out
}
