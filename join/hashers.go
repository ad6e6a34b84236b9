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

import "github.com/NerdMeNot/galleon/kernel"

// IntHasher returns a Hasher for integer join keys, backed by the kernel
// package's splitmix-style mixer.
func IntHasher[T kernel.Integers]() Hasher[T] {
	return func(v T) uint64 { return kernel.HashInt(v) }
}

// FloatHasher returns a Hasher for float join keys, backed by the kernel
// package's NaN/-0.0 canonicalising hash.
func FloatHasher[T kernel.Floats]() Hasher[T] {
	return func(v T) uint64 { return kernel.HashFloat(v) }
}
