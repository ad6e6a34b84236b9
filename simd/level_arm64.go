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

//go:build arm64

package simd

// NEON is mandatory on every arm64 core, so detection only needs to honor the
// scalar escape hatch; there is no narrower/wider tier to probe for below the
// 128-bit baseline the way there is on amd64's SSE4/AVX2/AVX-512 ladder.
func init() {
	if noSIMDEnv() {
		SetLevel(Scalar)
		return
	}
	SetLevel(Narrow)
}
