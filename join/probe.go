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

package join

import (
	"github.com/NerdMeNot/galleon/blitz"
	"github.com/NerdMeNot/galleon/driver"
)

func (t *Table[T]) probeChunk(probeKeys []T, start, end int) (probeIdx, buildIdx []int32) {
	for p := start; p < end; p++ {
		t.probeOne(probeKeys[p], func(c int32) {
			probeIdx = append(probeIdx, int32(p))
			buildIdx = append(buildIdx, c)
		})
	}
	return
}

// Probe emits (probeRow, buildRow) for every match, in probe-row-major,
// chain order within a row. The probe is partitioned across the pool once
// len(probeKeys) is large enough; each partition appends to its own local
// buffer and the driver concatenates partitions in order, so global
// probe-row ordering is preserved regardless of worker scheduling.
//
// maxMatches caps the emitted count; on overflow the result is truncated and
// truncated is reported true, matching §4.6's failure mode for probe
// overflow. A maxMatches <= 0 means unbounded.
func (t *Table[T]) Probe(probeKeys []T, maxMatches int) (probeIdx, buildIdx []int32, truncated bool) {
	n := len(probeKeys)
	if !driver.ShouldParallelize(n) {
		probeIdx, buildIdx = t.probeChunk(probeKeys, 0, n)
	} else {
		pool := blitz.Global()
		workers := pool.NumWorkers()
		if workers <= 1 {
			probeIdx, buildIdx = t.probeChunk(probeKeys, 0, n)
		} else {
			numChunks, chunkSize := driver.Partition(n, workers)
			probePartial := make([][]int32, numChunks)
			buildPartial := make([][]int32, numChunks)
			pool.ParallelFor(n, chunkSize, func(start, end int) {
				idx := start / chunkSize
				probePartial[idx], buildPartial[idx] = t.probeChunk(probeKeys, start, end)
			})
			for i := range probePartial {
				probeIdx = append(probeIdx, probePartial[i]...)
				buildIdx = append(buildIdx, buildPartial[i]...)
			}
		}
	}
	if maxMatches > 0 && len(probeIdx) > maxMatches {
		probeIdx = probeIdx[:maxMatches]
		buildIdx = buildIdx[:maxMatches]
		truncated = true
	}
	return probeIdx, buildIdx, truncated
}
