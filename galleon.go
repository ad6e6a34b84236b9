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

// Package galleon is a columnar in-memory compute kernel: SIMD-dispatched
// aggregations, filters, gathers, hashes, sorts, joins, and group-bys over
// dense numeric arrays.
//
// The root package re-exports the handful of entry points most callers need
// so a single import covers the common path; the heavier machinery lives in
// its own subpackage and can be reached directly when that level of control
// is needed:
//
//   - simd    — CPU feature detection and the process-wide dispatch level
//   - blitz   — the work-stealing pool backing every parallel operation
//   - kernel  — the op registry: reductions, element-wise, filter, gather, hash, sort
//   - driver  — sequential-vs-parallel dispatch and chunk combination
//   - column  — the chunked f64 column
//   - join    — hash-join build/probe and end-to-end inner/left-outer joins
//   - groupby — hash-aggregated group assignment and multi-aggregate fold
package galleon

import (
	"github.com/NerdMeNot/galleon/blitz"
	"github.com/NerdMeNot/galleon/column"
	"github.com/NerdMeNot/galleon/simd"
)

// SIMDLevel reports the dispatch level every kernel in the process currently
// resolves against.
func SIMDLevel() simd.Level { return simd.CurrentLevel() }

// SetSIMDLevel overrides the dispatch level process-wide without re-probing
// the CPU. See simd.SetLevel for the unsynchronized-write caveat.
func SetSIMDLevel(level simd.Level) { simd.SetLevel(level) }

// SetMaxThreads pins the shared pool's worker count for its next lazy init;
// 0 re-enables auto-detection from GOMAXPROCS.
func SetMaxThreads(k int) { blitz.SetMaxThreads(k) }

// Shutdown tears down the shared pool, joining all workers. Safe to call
// even if the pool was never initialized.
func Shutdown() { blitz.Teardown() }

// NewColumn creates a chunked f64 column by copying data.
func NewColumn(data []float64) *column.ChunkedColumn { return column.Create(data) }
