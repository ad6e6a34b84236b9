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

// ExtendedResult adds, to the core group-id assignment, the first row index
// that produced each group (group creation order) and a running count of
// rows per group.
type ExtendedResult struct {
	GroupIDs    []uint32
	NumGroups   uint32
	FirstRowIdx []uint32
	GroupCounts []uint32
}

// ComputeExt runs Compute and additionally tracks first-row and per-group
// counts, scanning group ids once more now that NumGroups is known.
func ComputeExt(hashes []uint64) *ExtendedResult {
	return extend(Compute(hashes))
}

// ComputeExtWithKeys is the collision-safe variant of ComputeExt.
func ComputeExtWithKeys[K comparable](hashes []uint64, keys []K) *ExtendedResult {
	return extend(ComputeWithKeys(hashes, keys))
}

func extend(r *Result) *ExtendedResult {
	firstRow := make([]uint32, r.NumGroups)
	counts := make([]uint32, r.NumGroups)
	seen := make([]bool, r.NumGroups)
	for i, g := range r.GroupIDs {
		if !seen[g] {
			seen[g] = true
			firstRow[g] = uint32(i)
		}
		counts[g]++
	}
	return &ExtendedResult{
		GroupIDs:    r.GroupIDs,
		NumGroups:   r.NumGroups,
		FirstRowIdx: firstRow,
		GroupCounts: counts,
	}
}
