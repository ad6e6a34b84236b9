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

import "math"

// mixInt64 is a splitmix64-style integer mixer: a few rounds of xor-shift and
// multiply by odd constants chosen for their avalanche properties. It is the
// building block for every integer and canonicalised-float hash below.
func mixInt64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// HashInt hashes a single integer element.
func HashInt[T Integers](v T) uint64 {
	return mixInt64(uint64(v))
}

// canonicalFloatBits converts a float to the bit pattern used for hashing:
// -0.0 collapses to +0.0 so the two compare-equal values hash identically,
// and every NaN collapses to one canonical bit pattern so hash determinism
// does not depend on which of the many NaN payloads a computation produced.
func canonicalFloatBits[T Floats](v T) uint64 {
	f := float64(v)
	if f == 0 {
		f = 0 // normalizes -0.0 to +0.0
	}
	if f != f {
		return 0x7ff8000000000001 // single canonical NaN bit pattern
	}
	return math.Float64bits(f)
}

// HashFloat hashes a single float element after canonicalisation.
func HashFloat[T Floats](v T) uint64 {
	return mixInt64(canonicalFloatBits(v))
}

// HashBool hashes a single mask/bool byte.
func HashBool(v byte) uint64 {
	if v != 0 {
		return mixInt64(1)
	}
	return mixInt64(0)
}

// CombineHash folds a second hash into a running one. Order-sensitive: used
// to build a composite key hash over several columns, column by column.
func CombineHash(h1, h2 uint64) uint64 {
	const golden = 0x9e3779b97f4a7c15
	return h1 ^ (h2 + golden + (h1 << 6) + (h1 >> 2))
}

// HashIntArray writes out[i] = hash(v[i]) for every element.
func HashIntArray[T Integers](v []T, out []uint64) {
	n := min(len(v), len(out))
	for i := 0; i < n; i++ {
		out[i] = HashInt(v[i])
	}
}

// HashFloatArray writes out[i] = hash(v[i]) for every element, canonicalising
// -0.0 and NaN first.
func HashFloatArray[T Floats](v []T, out []uint64) {
	n := min(len(v), len(out))
	for i := 0; i < n; i++ {
		out[i] = HashFloat(v[i])
	}
}

// HashBoolArray writes out[i] = hash(v[i]) for every mask byte.
func HashBoolArray(v []byte, out []uint64) {
	n := min(len(v), len(out))
	for i := 0; i < n; i++ {
		out[i] = HashBool(v[i])
	}
}
