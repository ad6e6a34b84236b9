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

// AddArray computes out[i] = a[i] + b[i] for i in [0, n), n = min of all
// three lengths. It is a map-style kernel: no combined result, safe to run
// per-chunk with no reduction step.
func AddArray[T Floats | Integers](a, b, out []T) {
	n := min(len(a), min(len(b), len(out)))
	for i := 0; i < n; i++ {
		out[i] = a[i] + b[i]
	}
}

// SubArray computes out[i] = a[i] - b[i].
func SubArray[T Floats | Integers](a, b, out []T) {
	n := min(len(a), min(len(b), len(out)))
	for i := 0; i < n; i++ {
		out[i] = a[i] - b[i]
	}
}

// MulArray computes out[i] = a[i] * b[i].
func MulArray[T Floats | Integers](a, b, out []T) {
	n := min(len(a), min(len(b), len(out)))
	for i := 0; i < n; i++ {
		out[i] = a[i] * b[i]
	}
}

// DivArray computes out[i] = a[i] / b[i]. Float division by zero follows
// IEEE-754 (±Inf or NaN); integer division by zero panics, matching Go's
// native `/` operator and the caller-contract rule in §7 that undefined
// input is undefined behavior, not a defended-against error.
func DivArray[T Floats | Integers](a, b, out []T) {
	n := min(len(a), min(len(b), len(out)))
	for i := 0; i < n; i++ {
		out[i] = a[i] / b[i]
	}
}

// AddScalar computes out[i] = a[i] + s for every element.
func AddScalar[T Floats | Integers](a []T, s T, out []T) {
	n := min(len(a), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i] + s
	}
}

// SubScalar computes out[i] = a[i] - s.
func SubScalar[T Floats | Integers](a []T, s T, out []T) {
	n := min(len(a), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i] - s
	}
}

// MulScalar computes out[i] = a[i] * s.
func MulScalar[T Floats | Integers](a []T, s T, out []T) {
	n := min(len(a), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i] * s
	}
}

// DivScalar computes out[i] = a[i] / s.
func DivScalar[T Floats | Integers](a []T, s T, out []T) {
	n := min(len(a), len(out))
	for i := 0; i < n; i++ {
		out[i] = a[i] / s
	}
}

// CompareOp identifies which relational operator a comparison kernel applies.
type CompareOp int

const (
	CompareGT CompareOp = iota
	CompareGE
	CompareLT
	CompareLE
	CompareEQ
	CompareNE
)

// CompareScalar writes a dense byte mask (nonzero == true, one byte per
// element of a) for `a[i] OP threshold`.
func CompareScalar[T Floats | Integers](a []T, op CompareOp, threshold T, mask []byte) {
	n := min(len(a), len(mask))
	var test func(T, T) bool
	switch op {
	case CompareGT:
		test = func(x, y T) bool { return x > y }
	case CompareGE:
		test = func(x, y T) bool { return x >= y }
	case CompareLT:
		test = func(x, y T) bool { return x < y }
	case CompareLE:
		test = func(x, y T) bool { return x <= y }
	case CompareEQ:
		test = func(x, y T) bool { return x == y }
	case CompareNE:
		test = func(x, y T) bool { return x != y }
	}
	for i := 0; i < n; i++ {
		if test(a[i], threshold) {
			mask[i] = 1
		} else {
			mask[i] = 0
		}
	}
}

// CompareArray writes a dense byte mask for `a[i] OP b[i]`.
func CompareArray[T Floats | Integers](a, b []T, op CompareOp, mask []byte) {
	n := min(len(a), min(len(b), len(mask)))
	var test func(T, T) bool
	switch op {
	case CompareGT:
		test = func(x, y T) bool { return x > y }
	case CompareGE:
		test = func(x, y T) bool { return x >= y }
	case CompareLT:
		test = func(x, y T) bool { return x < y }
	case CompareLE:
		test = func(x, y T) bool { return x <= y }
	case CompareEQ:
		test = func(x, y T) bool { return x == y }
	case CompareNE:
		test = func(x, y T) bool { return x != y }
	}
	for i := 0; i < n; i++ {
		if test(a[i], b[i]) {
			mask[i] = 1
		} else {
			mask[i] = 0
		}
	}
}
