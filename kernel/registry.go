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

// Package kernel holds the galleon op registry: a Family holds up to four
// implementations of an operation, one per simd.Level, and a Resolve call
// returns the highest one at or below the process's current dispatch level.
// Sum, MinFloat and MaxFloat dispatch through a Family. MinInt and MaxInt
// read the level directly to choose their lane count. The element-wise,
// filter, gather, hash, argsort and window kernels have a single
// implementation that does not consult the level.
//
// Rather than a type-erased map[opName]map[elemType]impl (the literal ABI
// shape, built for a header with no generics), each family is expressed once
// as a Go generic over the element type and instantiated per call site —
// the same per-type duplication the ABI needs, produced by the compiler
// instead of hand-written per type, per §9's design note.
//
// Every kernel here is straight-line, and all except ArgsortAsc and
// ArgsortDesc (which allocate and return the permutation) are
// allocation-free. The reductions loop in strides of simd.LanesFor(level)
// using a small fixed-size accumulator array, then a scalar tail handles the
// remainder. Dispatch (reading simd.CurrentLevel) happens once per call,
// outside the loop.
package kernel

import "github.com/NerdMeNot/galleon/simd"

// Floats and Integers are re-exported from simd so every kernel file in this
// package can write the constraint unqualified.
type (
	Floats   = simd.Floats
	Integers = simd.Integers
)

// Family holds up to four implementations of one operation over one element
// type, indexed by simd.Level. A nil entry is not expected: Scalar must
// always be populated, so Resolve always has something to fall back to.
type Family[F any] struct {
	impls [4]F
}

// NewFamily builds a Family from its four level-indexed implementations.
// Passing the same function for levels that have nothing special to do at
// that width (e.g. the same body for Wide and Widest) is normal.
func NewFamily[F any](scalar, narrow, wide, widest F) Family[F] {
	return Family[F]{impls: [4]F{scalar, narrow, wide, widest}}
}

// Resolve returns the implementation for the highest level <= the given
// level. It never inspects simd.CurrentLevel itself so callers can force a
// level for testing without going through simd.SetLevel.
func (f Family[F]) Resolve(level simd.Level) F {
	if int(level) >= len(f.impls) {
		level = simd.Level(len(f.impls) - 1)
	}
	return f.impls[level]
}

// ResolveCurrent resolves against simd.CurrentLevel(), the common case for
// every production call path.
func (f Family[F]) ResolveCurrent() F {
	return f.Resolve(simd.CurrentLevel())
}
