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

// Package column implements the chunked f64 column: a sequence of
// fixed-capacity buffers sized to stay L2-resident, with per-chunk parallel
// aggregation, filtering, and sorting run on blitz's pool once package
// driver's size threshold is met.
package column

import (
	"container/heap"
	"math"

	"github.com/NerdMeNot/galleon/blitz"
	"github.com/NerdMeNot/galleon/driver"
	"github.com/NerdMeNot/galleon/kernel"
)

// ChunkSize is the canonical chunk element count: 8192 float64s is 64 KiB,
// sized to fit a chunk plus working set in a typical L2 cache.
const ChunkSize = 8192

// ChunkedColumn is an ordered sequence of chunks whose concatenation is the
// logical column. All but possibly the last chunk have exactly ChunkSize
// elements. A ChunkedColumn is immutable after Create: filter and sort
// return a new one rather than mutating in place.
type ChunkedColumn struct {
	chunks [][]float64
	length int
}

// Create copies data into a fresh chunked column.
func Create(data []float64) *ChunkedColumn {
	n := len(data)
	numChunks := (n + ChunkSize - 1) / ChunkSize
	if numChunks == 0 {
		return &ChunkedColumn{}
	}
	chunks := make([][]float64, numChunks)
	for i := 0; i < numChunks; i++ {
		start := i * ChunkSize
		end := min(start+ChunkSize, n)
		buf := make([]float64, end-start)
		copy(buf, data[start:end])
		chunks[i] = buf
	}
	return &ChunkedColumn{chunks: chunks, length: n}
}

// Len returns the logical column length.
func (c *ChunkedColumn) Len() int { return c.length }

// NumChunks returns how many chunk buffers back the column.
func (c *ChunkedColumn) NumChunks() int { return len(c.chunks) }

// Get returns the element at logical index i.
func (c *ChunkedColumn) Get(i int) float64 {
	return c.chunks[i/ChunkSize][i%ChunkSize]
}

// CopyToSlice writes the whole logical column, in order, into out (which
// must have length >= c.Len()).
func (c *ChunkedColumn) CopyToSlice(out []float64) {
	offset := 0
	for _, chunk := range c.chunks {
		copy(out[offset:], chunk)
		offset += len(chunk)
	}
}

// runChunked runs fn over [0, numChunks) on the pool once the column is
// large enough to be worth parallelizing. The gate is the column's element
// count (c.length), not numChunks: a column only has ceil(length/ChunkSize)
// chunks, so gating on numChunks against driver.ParThreshold (expressed in
// elements) would require roughly 800 million elements (100,000 × 8192)
// before any column ever self-parallelized. Dispatch passes a granularity
// of 1 chunk, but ParallelFor creates at most one task per worker, so when
// there are more chunks than workers each task covers a contiguous run of
// several whole chunks.
func (c *ChunkedColumn) runChunked(numChunks int, fn func(start, end int)) {
	if !driver.ShouldParallelize(c.length) {
		fn(0, numChunks)
		return
	}
	pool := blitz.Global()
	if pool.NumWorkers() <= 1 {
		fn(0, numChunks)
		return
	}
	pool.ParallelFor(numChunks, 1, fn)
}

// forEachChunk runs fn(chunkIndex, chunk) across all chunks, in parallel
// once the column is large enough per package driver's threshold.
func (c *ChunkedColumn) forEachChunk(fn func(chunkIdx int, chunk []float64)) {
	numChunks := len(c.chunks)
	if numChunks == 0 {
		return
	}
	c.runChunked(numChunks, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i, c.chunks[i])
		}
	})
}

// Sum adds every element across all chunks.
func (c *ChunkedColumn) Sum() float64 {
	numChunks := len(c.chunks)
	if numChunks == 0 {
		return 0
	}
	partials := make([]float64, numChunks)
	c.runChunked(numChunks, func(start, end int) {
		for i := start; i < end; i++ {
			partials[i] = kernel.Sum(c.chunks[i])
		}
	})
	var total float64
	for _, p := range partials {
		total += p
	}
	return total
}

type sumCount struct {
	sum   float64
	count int
}

// Mean is Sum()/Len(), computed by accumulating a (sum, count) pair per
// chunk and combining those, matching §4.5's accumulation rule.
func (c *ChunkedColumn) Mean() float64 {
	numChunks := len(c.chunks)
	if numChunks == 0 {
		return math.NaN()
	}
	partials := make([]sumCount, numChunks)
	c.runChunked(numChunks, func(start, end int) {
		for i := start; i < end; i++ {
			partials[i] = sumCount{sum: kernel.Sum(c.chunks[i]), count: len(c.chunks[i])}
		}
	})
	var sc sumCount
	for _, p := range partials {
		sc.sum += p.sum
		sc.count += p.count
	}
	if sc.count == 0 {
		return math.NaN()
	}
	return sc.sum / float64(sc.count)
}

type minMax struct {
	val   float64
	valid bool
}

// Min returns the NaN-ignoring minimum across all chunks, and false if the
// column is empty.
func (c *ChunkedColumn) Min() (float64, bool) {
	return c.minMaxBy(kernel.MinFloat[float64], minOf)
}

// Max returns the NaN-ignoring maximum across all chunks, and false if the
// column is empty.
func (c *ChunkedColumn) Max() (float64, bool) {
	return c.minMaxBy(kernel.MaxFloat[float64], maxOf)
}

func minOf(a, b float64) float64 {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if b < a {
		return b
	}
	return a
}

func maxOf(a, b float64) float64 {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if b > a {
		return b
	}
	return a
}

func (c *ChunkedColumn) minMaxBy(chunkPick func([]float64) (float64, bool), combine func(a, b float64) float64) (float64, bool) {
	numChunks := len(c.chunks)
	if numChunks == 0 {
		return 0, false
	}
	partials := make([]minMax, numChunks)
	c.runChunked(numChunks, func(start, end int) {
		for i := start; i < end; i++ {
			if v, ok := chunkPick(c.chunks[i]); ok {
				partials[i] = minMax{val: v, valid: true}
			}
		}
	})
	var acc minMax
	for _, p := range partials {
		if !p.valid {
			continue
		}
		if !acc.valid {
			acc = p
			continue
		}
		acc.val = combine(acc.val, p.val)
	}
	return acc.val, acc.valid
}

// FilterGT returns a new chunked column holding, in order, every element
// greater than threshold.
func (c *ChunkedColumn) FilterGT(threshold float64) *ChunkedColumn {
	return c.filterBy(func(chunk []float64, mask []byte) { kernel.FilterMaskGT(chunk, threshold, mask) })
}

// FilterLT returns a new chunked column holding, in order, every element
// less than threshold.
func (c *ChunkedColumn) FilterLT(threshold float64) *ChunkedColumn {
	return c.filterBy(func(chunk []float64, mask []byte) { kernel.FilterMaskLT(chunk, threshold, mask) })
}

// filterBy computes a per-chunk mask, compacts the kept elements per chunk,
// then concatenates chunk outputs and re-chunks to honour the
// all-but-last-chunk-is-full invariant.
func (c *ChunkedColumn) filterBy(maskFn func(chunk []float64, mask []byte)) *ChunkedColumn {
	numChunks := len(c.chunks)
	if numChunks == 0 {
		return &ChunkedColumn{}
	}
	kept := make([][]float64, numChunks)
	c.forEachChunk(func(idx int, chunk []float64) {
		mask := make([]byte, len(chunk))
		maskFn(chunk, mask)
		buf := make([]float64, 0, len(chunk))
		for i, b := range mask {
			if b != 0 {
				buf = append(buf, chunk[i])
			}
		}
		kept[idx] = buf
	})

	total := 0
	for _, buf := range kept {
		total += len(buf)
	}
	flat := make([]float64, 0, total)
	for _, buf := range kept {
		flat = append(flat, buf...)
	}
	return Create(flat)
}

// heapItem is one live element of a per-chunk sorted sequence in the k-way
// merge used by Argsort.
type heapItem struct {
	value     float64
	globalIdx int32
	seqIdx    int // which chunk's sequence this came from
	posInSeq  int // position within that sequence
}

type mergeHeap []heapItem

func (h mergeHeap) Len() int { return len(h) }
func (h mergeHeap) Less(i, j int) bool {
	if h[i].value != h[j].value {
		return h[i].value < h[j].value
	}
	return h[i].globalIdx < h[j].globalIdx
}
func (h mergeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x any)         { *h = append(*h, x.(heapItem)) }
func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Argsort returns a permutation of [0, Len()) that visits the column in
// non-decreasing order, ties broken by original index. Each chunk is
// argsorted locally and in parallel, then the per-chunk sorted sequences are
// k-way merged by value.
func (c *ChunkedColumn) Argsort() []int32 {
	numChunks := len(c.chunks)
	if numChunks == 0 {
		return nil
	}
	sequences := make([][]int32, numChunks)
	c.runChunked(numChunks, func(start, end int) {
		for i := start; i < end; i++ {
			base := int32(i * ChunkSize)
			local := kernel.ArgsortAsc(c.chunks[i])
			global := make([]int32, len(local))
			for j, li := range local {
				global[j] = li + base
			}
			sequences[i] = global
		}
	})

	h := make(mergeHeap, 0, numChunks)
	for s, seq := range sequences {
		if len(seq) == 0 {
			continue
		}
		h = append(h, heapItem{value: c.Get(int(seq[0])), globalIdx: seq[0], seqIdx: s, posInSeq: 0})
	}
	heap.Init(&h)

	out := make([]int32, 0, c.length)
	for h.Len() > 0 {
		top := heap.Pop(&h).(heapItem)
		out = append(out, top.globalIdx)
		seq := sequences[top.seqIdx]
		nextPos := top.posInSeq + 1
		if nextPos < len(seq) {
			nextIdx := seq[nextPos]
			heap.Push(&h, heapItem{value: c.Get(int(nextIdx)), globalIdx: nextIdx, seqIdx: top.seqIdx, posInSeq: nextPos})
		}
	}
	return out
}

// Sort returns a new chunked column with elements in non-decreasing order.
func (c *ChunkedColumn) Sort() *ChunkedColumn {
	perm := c.Argsort()
	full := make([]float64, c.length)
	c.CopyToSlice(full)
	out := make([]float64, len(perm))
	kernel.GatherFloat(full, perm, out)
	return Create(out)
}
