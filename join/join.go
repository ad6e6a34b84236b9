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

package join

import (
	"github.com/NerdMeNot/galleon/blitz"
	"github.com/NerdMeNot/galleon/driver"
)

// InnerJoinResult owns the paired row indices produced by an inner join.
// NumMatches equals len(LeftIndices) == len(RightIndices); callers that
// never retain these slices past logical "release" get ordinary GC cleanup
// in place of the paired-handle's explicit destroy entry.
type InnerJoinResult struct {
	LeftIndices  []int32
	RightIndices []int32
	NumMatches   int
	Truncated    bool
}

// LeftJoinResult owns the paired row indices produced by a left-outer join.
// An unmatched left row appears once with RightIndices[i] == -1.
type LeftJoinResult struct {
	LeftIndices  []int32
	RightIndices []int32
	NumMatches   int
	Truncated    bool
}

// InnerJoin builds a table over whichever side is smaller (the standard
// build-on-smaller heuristic, since the chain table's memory and build cost
// scale with the build side) and probes with the other. maxMatches <= 0
// means unbounded.
func InnerJoin[T comparable](left, right []T, hash Hasher[T], maxMatches int) *InnerJoinResult {
	if len(left) <= len(right) {
		table := Build(left, hash)
		if table == nil {
			return nil
		}
		rightIdx, leftIdx, truncated := table.Probe(right, maxMatches)
		return &InnerJoinResult{LeftIndices: leftIdx, RightIndices: rightIdx, NumMatches: len(leftIdx), Truncated: truncated}
	}
	table := Build(right, hash)
	if table == nil {
		return nil
	}
	leftIdx, rightIdx, truncated := table.Probe(left, maxMatches)
	return &InnerJoinResult{LeftIndices: leftIdx, RightIndices: rightIdx, NumMatches: len(leftIdx), Truncated: truncated}
}

// leftOuterChunk scans left rows [start, end), emitting every match against
// the right-side table, and (l, -1) for an unmatched row.
func leftOuterChunk[T comparable](table *Table[T], left []T, start, end int) (leftIdx, rightIdx []int32) {
	for l := start; l < end; l++ {
		matched := false
		table.probeOne(left[l], func(c int32) {
			leftIdx = append(leftIdx, int32(l))
			rightIdx = append(rightIdx, c)
			matched = true
		})
		if !matched {
			leftIdx = append(leftIdx, int32(l))
			rightIdx = append(rightIdx, -1)
		}
	}
	return
}

// LeftOuterJoin always builds on the right (per §4.6) and scans the left
// side, partitioned across the pool once large enough; each partition
// covers a contiguous block of left rows, so concatenating partitions in
// order preserves global left-row order without extra bookkeeping.
func LeftOuterJoin[T comparable](left, right []T, hash Hasher[T], maxMatches int) *LeftJoinResult {
	table := Build(right, hash)
	if table == nil {
		return nil
	}
	n := len(left)

	var leftIdx, rightIdx []int32
	if !driver.ShouldParallelize(n) {
		leftIdx, rightIdx = leftOuterChunk(table, left, 0, n)
	} else {
		pool := blitz.Global()
		workers := pool.NumWorkers()
		if workers <= 1 {
			leftIdx, rightIdx = leftOuterChunk(table, left, 0, n)
		} else {
			numChunks, chunkSize := driver.Partition(n, workers)
			leftPartial := make([][]int32, numChunks)
			rightPartial := make([][]int32, numChunks)
			pool.ParallelFor(n, chunkSize, func(start, end int) {
				idx := start / chunkSize
				leftPartial[idx], rightPartial[idx] = leftOuterChunk(table, left, start, end)
			})
			for i := range leftPartial {
				leftIdx = append(leftIdx, leftPartial[i]...)
				rightIdx = append(rightIdx, rightPartial[i]...)
			}
		}
	}

	truncated := false
	if maxMatches > 0 && len(leftIdx) > maxMatches {
		leftIdx = leftIdx[:maxMatches]
		rightIdx = rightIdx[:maxMatches]
		truncated = true
	}
	return &LeftJoinResult{LeftIndices: leftIdx, RightIndices: rightIdx, NumMatches: len(leftIdx), Truncated: truncated}
}
