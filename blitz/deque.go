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

package blitz

import "sync"

// deque is a double-ended task queue owned by one worker. The owner pushes
// and pops at the bottom; thieves take from the top. A plain mutex guards
// both ends rather than a lock-free chase-lev protocol: §5 of the design
// explicitly allows "per-worker deque locks", and the task bodies here run
// long enough (a chunk of a kernel) that lock contention on push/pop is not
// the bottleneck a lock-free deque would address.
type deque struct {
	mu    sync.Mutex
	tasks []task
}

type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

func (d *deque) pushBottom(t task) {
	d.mu.Lock()
	d.tasks = append(d.tasks, t)
	d.mu.Unlock()
}

// popBottom is called only by the owning worker.
func (d *deque) popBottom() (task, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := len(d.tasks)
	if n == 0 {
		return task{}, false
	}
	t := d.tasks[n-1]
	d.tasks = d.tasks[:n-1]
	return t, true
}

// stealTop is called by any other worker hunting for work.
func (d *deque) stealTop() (task, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.tasks) == 0 {
		return task{}, false
	}
	t := d.tasks[0]
	d.tasks = d.tasks[1:]
	return t, true
}

func (d *deque) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tasks)
}
