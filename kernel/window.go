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

// CumulativeSum writes out[i] = sum(v[0..i]) (inclusive prefix sum). Like
// Sum, any NaN input makes every subsequent output NaN.
func CumulativeSum[T Floats | Integers](v []T, out []T) {
	n := min(len(v), len(out))
	var running T
	for i := 0; i < n; i++ {
		running += v[i]
		out[i] = running
	}
}

// RollingSum writes out[i] = sum(v[max(0, i-window+1) .. i]), a trailing
// moving sum of the given window size. window <= 1 copies v unchanged.
func RollingSum[T Floats | Integers](v []T, window int, out []T) {
	n := min(len(v), len(out))
	if window < 1 {
		window = 1
	}
	var running T
	for i := 0; i < n; i++ {
		running += v[i]
		if i >= window {
			running -= v[i-window]
		}
		out[i] = running
	}
}

// RollingMean writes out[i] = mean(v[max(0, i-window+1) .. i]).
func RollingMean[T Floats](v []T, window int, out []T) {
	n := min(len(v), len(out))
	if window < 1 {
		window = 1
	}
	var running T
	for i := 0; i < n; i++ {
		running += v[i]
		count := T(window)
		if i >= window {
			running -= v[i-window]
		} else {
			count = T(i + 1)
		}
		out[i] = running / count
	}
}
