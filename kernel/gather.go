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

// GatherFloat writes out[i] = src[indices[i]] for every i, substituting NaN
// when indices[i] is negative or >= len(src) rather than panicking: a gather
// is frequently driven by group-by or join output where some rows legitimately
// have no match.
func GatherFloat[T Floats](src []T, indices []int32, out []T) {
	n := min(len(indices), len(out))
	nan := nanOf[T]()
	for i := 0; i < n; i++ {
		idx := indices[i]
		if idx < 0 || int(idx) >= len(src) {
			out[i] = nan
			continue
		}
		out[i] = src[idx]
	}
}

// GatherInt writes out[i] = src[indices[i]], substituting the zero value when
// indices[i] is out of range. Integers have no NaN, so 0 is the documented
// sentinel for "no match".
func GatherInt[T Integers](src []T, indices []int32, out []T) {
	n := min(len(indices), len(out))
	var zero T
	for i := 0; i < n; i++ {
		idx := indices[i]
		if idx < 0 || int(idx) >= len(src) {
			out[i] = zero
			continue
		}
		out[i] = src[idx]
	}
}

// GatherBool writes out[i] = src[indices[i]], substituting 0 (false) for an
// out-of-range index.
func GatherBool(src []byte, indices []int32, out []byte) {
	n := min(len(indices), len(out))
	for i := 0; i < n; i++ {
		idx := indices[i]
		if idx < 0 || int(idx) >= len(src) {
			out[i] = 0
			continue
		}
		out[i] = src[idx]
	}
}
