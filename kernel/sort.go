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

package kernel

import "sort"

// ArgsortAsc returns a permutation of [0, len(v)) that visits v in
// non-decreasing order. Ties are broken by original index (the output is
// strictly increasing among equal keys), matching the stability guarantee
// sort.SliceStable already gives: equal elements keep their relative order,
// and their relative order at input is ascending-by-index by construction.
func ArgsortAsc[T Floats | Integers](v []T) []int32 {
	idx := make([]int32, len(v))
	for i := range idx {
		idx[i] = int32(i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return v[idx[a]] < v[idx[b]]
	})
	return idx
}

// ArgsortDesc returns a permutation of [0, len(v)) that visits v in
// non-increasing order, ties broken by original index ascending.
func ArgsortDesc[T Floats | Integers](v []T) []int32 {
	idx := make([]int32, len(v))
	for i := range idx {
		idx[i] = int32(i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return v[idx[a]] > v[idx[b]]
	})
	return idx
}
