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

package groupby

import (
	"math"

	"github.com/NerdMeNot/galleon/blitz"
	"github.com/NerdMeNot/galleon/driver"
)

// SumByGroup folds values into G accumulators, one per group id, initialised
// to zero. Parallelised with per-worker local accumulator arrays reduced
// pairwise at the end: each worker's partial sums are associative to
// combine since group ids partition the rows, not the accumulator slots.
func SumByGroup(groupIDs []uint32, values []float64, numGroups uint32) []float64 {
	return foldByGroup(groupIDs, values, numGroups, 0, func(acc, v float64) float64 { return acc + v })
}

// CountByGroup returns the row count per group (equivalent to
// ExtendedResult.GroupCounts, provided separately for callers that only
// have group ids and want the count as an aggregate among others).
func CountByGroup(groupIDs []uint32, numGroups uint32) []uint32 {
	counts := make([]uint32, numGroups)
	for _, g := range groupIDs {
		counts[g]++
	}
	return counts
}

// MinByGroup folds the NaN-ignoring minimum per group, initialised to +Inf
// (no data point is larger, so the first non-NaN value replaces it). NaN
// values are skipped by the pairwise min rule, so a group whose values are
// all NaN yields +Inf.
func MinByGroup(groupIDs []uint32, values []float64, numGroups uint32) []float64 {
	return foldByGroup(groupIDs, values, numGroups, math.Inf(1), pairwiseMin)
}

// MaxByGroup folds the NaN-ignoring maximum per group, initialised to -Inf.
func MaxByGroup(groupIDs []uint32, values []float64, numGroups uint32) []float64 {
	return foldByGroup(groupIDs, values, numGroups, math.Inf(-1), pairwiseMax)
}

func pairwiseMin(a, b float64) float64 {
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

func pairwiseMax(a, b float64) float64 {
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

func foldByGroup(groupIDs []uint32, values []float64, numGroups uint32, identity float64, fold func(acc, v float64) float64) []float64 {
	n := min(len(groupIDs), len(values))
	if !driver.ShouldParallelize(n) {
		acc := makeFilled(int(numGroups), identity)
		foldRange(acc, groupIDs, values, 0, n, fold)
		return acc
	}
	pool := blitz.Global()
	workers := pool.NumWorkers()
	if workers <= 1 {
		acc := makeFilled(int(numGroups), identity)
		foldRange(acc, groupIDs, values, 0, n, fold)
		return acc
	}

	numChunks, chunkSize := driver.Partition(n, workers)
	partials := make([][]float64, numChunks)
	pool.ParallelFor(n, chunkSize, func(start, end int) {
		idx := start / chunkSize
		local := makeFilled(int(numGroups), identity)
		foldRange(local, groupIDs, values, start, end, fold)
		partials[idx] = local
	})

	result := partials[0]
	for i := 1; i < len(partials); i++ {
		for g := range result {
			result[g] = fold(result[g], partials[i][g])
		}
	}
	return result
}

func foldRange(acc []float64, groupIDs []uint32, values []float64, start, end int, fold func(acc, v float64) float64) {
	for i := start; i < end; i++ {
		g := groupIDs[i]
		acc[g] = fold(acc[g], values[i])
	}
}

func makeFilled(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}
