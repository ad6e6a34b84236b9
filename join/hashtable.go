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

// Package join implements the chained hash table build/probe and the
// end-to-end inner and left-outer join operations built on top of it.
package join

// Hasher computes the 64-bit hash of a key; callers pass kernel.HashFloat,
// kernel.HashInt, or a canonicalising wrapper around them.
type Hasher[T comparable] func(T) uint64

// Table is a chained hash table over build-side keys: head[b] is the most
// recently inserted row whose hash falls in bucket b, and next[i] links row
// i to the previous row inserted into the same bucket (or -1).
type Table[T comparable] struct {
	keys []T
	hash Hasher[T]
	head []int32
	next []int32
	mask uint64
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// maxBuildRows bounds N so that next_pow2(N*2) never overflows a 32-bit
// bucket count. §4.6 calls this the "T overflow on pathological N >= 2^31"
// failure mode; Build reports it by returning nil rather than constructing a
// table whose bucket count can't be represented.
const maxBuildRows = 1 << 30

// Build constructs a chained hash table over keys. Insertion order is
// deterministic (ascending row index), so duplicate keys form chains in
// reverse-insertion order, also deterministic. Returns nil on pathological
// oversized input (the "allocation failure -> null handle" rule of §4.6/§7).
func Build[T comparable](keys []T, hash Hasher[T]) *Table[T] {
	n := len(keys)
	if n > maxBuildRows {
		return nil
	}
	tsize := nextPow2(max(n*2, 16))
	head := make([]int32, tsize)
	for i := range head {
		head[i] = -1
	}
	next := make([]int32, n)
	mask := uint64(tsize - 1)
	for i, k := range keys {
		b := hash(k) & mask
		next[i] = head[b]
		head[b] = int32(i)
	}
	return &Table[T]{keys: keys, hash: hash, head: head, next: next, mask: mask}
}

// probeOne walks the chain for key k, calling emit(buildRowIdx) for every
// candidate whose stored key equals k.
func (t *Table[T]) probeOne(k T, emit func(int32)) {
	b := t.hash(k) & t.mask
	c := t.head[b]
	for c != -1 {
		if t.keys[c] == k {
			emit(c)
		}
		c = t.next[c]
	}
}
