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

// FilterMaskGT writes a dense byte mask (nonzero == true) for `v[i] > threshold`.
func FilterMaskGT[T Floats | Integers](v []T, threshold T, mask []byte) {
	n := min(len(v), len(mask))
	for i := 0; i < n; i++ {
		if v[i] > threshold {
			mask[i] = 1
		} else {
			mask[i] = 0
		}
	}
}

// FilterMaskLT writes a dense byte mask for `v[i] < threshold`.
func FilterMaskLT[T Floats | Integers](v []T, threshold T, mask []byte) {
	n := min(len(v), len(mask))
	for i := 0; i < n; i++ {
		if v[i] < threshold {
			mask[i] = 1
		} else {
			mask[i] = 0
		}
	}
}

// FilterGT writes the ascending indices of elements with v[i] > threshold
// into out (caller-sized, must be at least len(v)) and returns how many were
// written. This is the packed-index twin of FilterMaskGT; §8's filter/mask
// duality property requires the two to agree as sets and in order.
func FilterGT[T Floats | Integers](v []T, threshold T, out []int32) int {
	count := 0
	for i := 0; i < len(v); i++ {
		if v[i] > threshold {
			out[count] = int32(i)
			count++
		}
	}
	return count
}

// FilterLT writes the ascending indices of elements with v[i] < threshold.
func FilterLT[T Floats | Integers](v []T, threshold T, out []int32) int {
	count := 0
	for i := 0; i < len(v); i++ {
		if v[i] < threshold {
			out[count] = int32(i)
			count++
		}
	}
	return count
}

// IndicesFromMask writes the ascending indices of nonzero mask bytes into
// out and returns the count. Used both directly and to check the filter/mask
// duality invariant: IndicesFromMask(FilterMaskGT(x, t)) must equal FilterGT(x, t).
func IndicesFromMask(mask []byte, out []int32) int {
	count := 0
	for i, b := range mask {
		if b != 0 {
			out[count] = int32(i)
			count++
		}
	}
	return count
}

// CountMask returns the number of nonzero bytes in mask.
func CountMask(mask []byte) int {
	count := 0
	for _, b := range mask {
		if b != 0 {
			count++
		}
	}
	return count
}
