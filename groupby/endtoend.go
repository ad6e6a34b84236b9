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
	"github.com/NerdMeNot/galleon/kernel"
	"github.com/samber/lo"
)

// gatherByFirstRow is the non-hot-path counterpart of a gather kernel: it
// runs once per group-by call (length G, not L), so the ergonomics of
// lo.Map win over a manual loop.
func gatherByFirstRow[K comparable](keys []K, firstRowIdx []uint32) []K {
	return lo.Map(firstRowIdx, func(rowIdx uint32, _ int) K { return keys[rowIdx] })
}

// SumResult is the end-to-end single-measure group-by: one row per distinct
// key, in first-seen order, with the matching per-group sum.
type SumResult[K comparable] struct {
	Keys      []K
	Sums      []float64
	NumGroups uint32
}

// SumByKey hashes keys, assigns group ids (collision-safe via the keys
// themselves), gathers the distinct keys in first-seen order using
// first_row_idx, and sums values per group.
func SumByKey[K comparable](keys []K, values []float64, hash func(K) uint64) *SumResult[K] {
	hashes := make([]uint64, len(keys))
	for i, k := range keys {
		hashes[i] = hash(k)
	}
	ext := ComputeExtWithKeys(hashes, keys)
	distinctKeys := gatherByFirstRow(keys, ext.FirstRowIdx)
	sums := SumByGroup(ext.GroupIDs, values, ext.NumGroups)
	return &SumResult[K]{Keys: distinctKeys, Sums: sums, NumGroups: ext.NumGroups}
}

// MultiAggResult is the end-to-end multi-measure group-by: one row per
// distinct key with sum, min, max, and count of the same value column.
type MultiAggResult[K comparable] struct {
	Keys      []K
	Sum       []float64
	Min       []float64
	Max       []float64
	Count     []uint32
	NumGroups uint32
}

// MultiAggByKey is SumByKey's generalisation to {sum, min, max, count}.
func MultiAggByKey[K comparable](keys []K, values []float64, hash func(K) uint64) *MultiAggResult[K] {
	hashes := make([]uint64, len(keys))
	for i, k := range keys {
		hashes[i] = hash(k)
	}
	ext := ComputeExtWithKeys(hashes, keys)
	distinctKeys := gatherByFirstRow(keys, ext.FirstRowIdx)
	return &MultiAggResult[K]{
		Keys:      distinctKeys,
		Sum:       SumByGroup(ext.GroupIDs, values, ext.NumGroups),
		Min:       MinByGroup(ext.GroupIDs, values, ext.NumGroups),
		Max:       MaxByGroup(ext.GroupIDs, values, ext.NumGroups),
		Count:     ext.GroupCounts,
		NumGroups: ext.NumGroups,
	}
}

// KeyHashFloat adapts kernel.HashFloat to the func(K) uint64 shape SumByKey
// and MultiAggByKey expect.
func KeyHashFloat[K kernel.Floats](k K) uint64 { return kernel.HashFloat(k) }

// KeyHashInt adapts kernel.HashInt to the func(K) uint64 shape.
func KeyHashInt[K kernel.Integers](k K) uint64 { return kernel.HashInt(k) }
