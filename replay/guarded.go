// File: replay/guarded.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex-guarded replay memory for callers sharing one instance across goroutines.

package replay

import (
	"sync"

	"go.uber.org/atomic"
	"golang.org/x/sys/cpu"

	"github.com/momentics/replaymem/api"
)

var _ api.Memory[any] = (*Guarded[any])(nil)

// Guarded[T] serializes access to a Memory[T]. Len and Cap do not lock.
type Guarded[T any] struct {
	mu     sync.Mutex
	_      cpu.CacheLinePad // keep the lock off the counters' cache line
	length atomic.Int64
	total  atomic.Uint64
	mem    *Memory[T]
}

// NewGuarded creates a guarded memory of the given capacity.
func NewGuarded[T any](capacity int) (*Guarded[T], error) {
	mem, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Guarded[T]{mem: mem}, nil
}

// Push writes one item under the lock.
func (g *Guarded[T]) Push(item T) {
	g.mu.Lock()
	g.mem.Push(item)
	g.publish()
	g.mu.Unlock()
}

// PushItems writes the batch atomically with respect to other callers.
func (g *Guarded[T]) PushItems(items ...T) {
	g.mu.Lock()
	g.mem.PushItems(items...)
	g.publish()
	g.mu.Unlock()
}

// Get reads storage slot index under the lock.
func (g *Guarded[T]) Get(index int) (T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mem.Get(index)
}

// Len returns the occupied slot count as of the last completed push.
func (g *Guarded[T]) Len() int {
	return int(g.length.Load())
}

// Cap returns the fixed capacity.
func (g *Guarded[T]) Cap() int {
	return g.mem.Cap()
}

// Total returns the number of items ever pushed.
func (g *Guarded[T]) Total() uint64 {
	return g.total.Load()
}

// Snapshot returns a copy of the occupied slots in storage order.
func (g *Guarded[T]) Snapshot() []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mem.Items()
}

// Do runs fn with exclusive access to the underlying memory.
func (g *Guarded[T]) Do(fn func(m *Memory[T])) {
	g.mu.Lock()
	defer func() {
		g.publish()
		g.mu.Unlock()
	}()
	fn(g.mem)
}

// publish mirrors counters; must hold g.mu.
func (g *Guarded[T]) publish() {
	g.length.Store(int64(g.mem.Len()))
	g.total.Store(g.mem.Total())
}
