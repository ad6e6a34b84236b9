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

import (
	"math"

	"github.com/NerdMeNot/galleon/simd"
)

// sumImpl is the common shape every reduction in this file uses: `lanes`
// independent accumulators walk the array in parallel strides (so the
// additions have no dependency chain shorter than `lanes`, the same reason
// a real SIMD add operates on many lanes per instruction), then the
// accumulators are horizontally combined and a scalar tail covers the
// remainder. lanes == 1 degenerates to a plain scalar loop.
func sumImpl[T Floats | Integers](v []T, lanes int) T {
	if len(v) == 0 {
		return 0
	}
	var acc [simd.MaxLanes]T
	i := 0
	for ; i+lanes <= len(v); i += lanes {
		for l := 0; l < lanes; l++ {
			acc[l] += v[i+l]
		}
	}
	var total T
	for l := 0; l < lanes; l++ {
		total += acc[l]
	}
	for ; i < len(v); i++ {
		total += v[i]
	}
	return total
}

func sumFamily[T Floats | Integers]() Family[func([]T) T] {
	return NewFamily(
		func(v []T) T { return sumImpl(v, 1) },
		func(v []T) T { return sumImpl(v, simd.LanesFor[T](simd.Narrow)) },
		func(v []T) T { return sumImpl(v, simd.LanesFor[T](simd.Wide)) },
		func(v []T) T { return sumImpl(v, simd.LanesFor[T](simd.Widest)) },
	)
}

// Sum adds every element of v. Empty input sums to the type's zero value.
// For floats, any NaN input produces a NaN output: IEEE-754 addition already
// has that property, so no special casing is needed.
func Sum[T Floats | Integers](v []T) T {
	return sumFamily[T]().ResolveCurrent()(v)
}

// Mean is Sum(v) / len(v). An empty slice yields NaN so callers can detect
// the "no valid value" case the way Sum's 0 cannot distinguish.
func Mean[T Floats](v []T) T {
	if len(v) == 0 {
		return nanOf[T]()
	}
	return Sum(v) / T(len(v))
}

func nanOf[T Floats]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(math.NaN())).(T)
	default:
		return any(math.NaN()).(T)
	}
}

func isNaN[T Floats](x T) bool { return x != x }

// pairwiseMinFloat implements the NaN-ignoring rule from §4.2: if either
// operand is NaN, return the other; if both are NaN the result is NaN.
func pairwiseMinFloat[T Floats](a, b T) T {
	if isNaN(a) {
		return b
	}
	if isNaN(b) {
		return a
	}
	if b < a {
		return b
	}
	return a
}

func pairwiseMaxFloat[T Floats](a, b T) T {
	if isNaN(a) {
		return b
	}
	if isNaN(b) {
		return a
	}
	if b > a {
		return b
	}
	return a
}

func minMaxFloatImpl[T Floats](v []T, lanes int, pick func(a, b T) T) (T, bool) {
	if len(v) == 0 {
		var zero T
		return zero, false
	}
	var acc [simd.MaxLanes]T
	i := 0
	n := min(lanes, len(v))
	for l := 0; l < n; l++ {
		acc[l] = v[l]
	}
	i = n
	for ; i+lanes <= len(v); i += lanes {
		for l := 0; l < lanes; l++ {
			acc[l] = pick(acc[l], v[i+l])
		}
	}
	result := acc[0]
	for l := 1; l < n; l++ {
		result = pick(result, acc[l])
	}
	for ; i < len(v); i++ {
		result = pick(result, v[i])
	}
	return result, true
}

func minMaxFloatFamily[T Floats](pick func(a, b T) T) Family[func([]T) (T, bool)] {
	return NewFamily(
		func(v []T) (T, bool) { return minMaxFloatImpl(v, 1, pick) },
		func(v []T) (T, bool) { return minMaxFloatImpl(v, simd.LanesFor[T](simd.Narrow), pick) },
		func(v []T) (T, bool) { return minMaxFloatImpl(v, simd.LanesFor[T](simd.Wide), pick) },
		func(v []T) (T, bool) { return minMaxFloatImpl(v, simd.LanesFor[T](simd.Widest), pick) },
	)
}

// MinFloat returns the NaN-ignoring minimum and true, or (0, false) if v is
// empty. If every element is NaN the result is (NaN, true).
func MinFloat[T Floats](v []T) (T, bool) {
	return minMaxFloatFamily(pairwiseMinFloat[T]).ResolveCurrent()(v)
}

// MaxFloat returns the NaN-ignoring maximum and true, or (0, false) if v is
// empty.
func MaxFloat[T Floats](v []T) (T, bool) {
	return minMaxFloatFamily(pairwiseMaxFloat[T]).ResolveCurrent()(v)
}

func minMaxIntImpl[T Integers](v []T, lanes int, less bool) (T, bool) {
	if len(v) == 0 {
		var zero T
		return zero, false
	}
	pick := func(a, b T) T {
		if less {
			if b < a {
				return b
			}
			return a
		}
		if b > a {
			return b
		}
		return a
	}
	var acc [simd.MaxLanes]T
	n := min(lanes, len(v))
	for l := 0; l < n; l++ {
		acc[l] = v[l]
	}
	i := n
	for ; i+lanes <= len(v); i += lanes {
		for l := 0; l < lanes; l++ {
			acc[l] = pick(acc[l], v[i+l])
		}
	}
	result := acc[0]
	for l := 1; l < n; l++ {
		result = pick(result, acc[l])
	}
	for ; i < len(v); i++ {
		result = pick(result, v[i])
	}
	return result, true
}

// MinInt returns the minimum of v and true, or (0, false) if v is empty.
func MinInt[T Integers](v []T) (T, bool) {
	lanes := simd.LanesFor[T](simd.CurrentLevel())
	return minMaxIntImpl(v, lanes, true)
}

// MaxInt returns the maximum of v and true, or (0, false) if v is empty.
func MaxInt[T Integers](v []T) (T, bool) {
	lanes := simd.LanesFor[T](simd.CurrentLevel())
	return minMaxIntImpl(v, lanes, false)
}
