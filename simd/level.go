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

// Package simd detects the CPU's vector capability once at process start and
// publishes it as a single global dispatch level. Every kernel family in the
// galleon tree reads that level to pick its fastest available implementation.
//
// Detection happens in an arch-specific init() (level_amd64.go, level_arm64.go,
// level_other.go). Tests that need a specific level call SetLevel, which is an
// unsynchronized write: the caller is expected to configure it once, before any
// kernel runs, not toggle it concurrently with dispatch.
package simd

import (
	"os"
	"strconv"
)

// Level identifies the vector instruction set currently selected for dispatch.
type Level int

const (
	// Scalar means no vectorization; one element per loop iteration.
	Scalar Level = iota

	// Narrow covers 128-bit SIMD: SSE4 on amd64, NEON on arm64.
	Narrow

	// Wide covers 256-bit SIMD: AVX2.
	Wide

	// Widest covers 512-bit SIMD: AVX-512.
	Widest
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case Scalar:
		return "scalar"
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	case Widest:
		return "widest"
	default:
		return "unknown"
	}
}

// currentLevel and currentWidth are set once by an arch-specific init() and
// may be overridden afterwards via SetLevel. Per the package doc, writes are
// not synchronized with readers; configure before running kernels.
var (
	currentLevel Level
	currentWidth int
)

// CurrentLevel returns the dispatch level selected for this process.
func CurrentLevel() Level { return currentLevel }

// CurrentWidth returns the vector register width in bytes for the current
// level: 1 for Scalar, 16 for Narrow, 32 for Wide, 64 for Widest.
func CurrentWidth() int { return currentWidth }

// CurrentName is CurrentLevel().String(), kept as a separate entry point to
// mirror the ABI table's "name" accessor alongside the numeric level.
func CurrentName() string { return currentLevel.String() }

// HasSIMD reports whether the process is dispatching to anything beyond the
// pure-scalar fallback.
func HasSIMD() bool { return currentLevel != Scalar }

// SetLevel overrides the cached dispatch level without re-probing the CPU.
// It affects every subsequent kernel call process-wide. Tests use this to
// force a lower level on a capable machine; production code should not call
// it after kernels have started running on other goroutines.
func SetLevel(l Level) {
	currentLevel = l
	currentWidth = widthOf(l)
}

func widthOf(l Level) int {
	switch l {
	case Narrow:
		return 16
	case Wide:
		return 32
	case Widest:
		return 64
	default:
		return 1
	}
}

// noSIMDEnv reports whether GALLEON_NO_SIMD requests scalar-only dispatch,
// regardless of detected hardware capability. Useful for benchmarking the
// scalar fallback or working around a flaky detection on exotic hardware.
func noSIMDEnv() bool {
	v := os.Getenv("GALLEON_NO_SIMD")
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}
