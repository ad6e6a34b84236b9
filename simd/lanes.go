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

package simd

import "unsafe"

// Floats is the constraint for the floating-point element types the kernel
// tree supports: f64 and f32.
type Floats interface {
	~float32 | ~float64
}

// Integers is the constraint for the integer element types the kernel tree
// supports: i64 and i32.
type Integers interface {
	~int32 | ~int64
}

// Numeric covers every element type that participates in arithmetic kernels.
// Boolean masks are handled separately since they are not arithmetic.
type Numeric interface {
	Floats | Integers
}

// MaxLanes is an upper bound on the lane count used for fixed-size,
// non-allocating accumulator arrays inside kernel loops. It is sized for the
// widest level (Widest, 64 bytes) over the narrowest supported element (i32,
// 4 bytes): 64/4 = 16.
const MaxLanes = 16

// LanesFor returns how many T values the current level's vector width holds,
// clamped to [1, MaxLanes]. A kernel body iterates in strides of LanesFor and
// keeps that many independent accumulators before a final horizontal combine,
// mirroring how a real SIMD register batches independent lanes.
func LanesFor[T Numeric](level Level) int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	n := widthOf(level) / size
	if n < 1 {
		return 1
	}
	if n > MaxLanes {
		return MaxLanes
	}
	return n
}
