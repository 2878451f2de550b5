// File: internal/ring/ring.go
// Package ring implements the overwrite-by-slot ring used by replay memories.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is a fixed-capacity circular array with a wrapping write cursor.
// Reads address storage slots directly; slot 0 is not remapped to the
// oldest item after wraparound. Not safe for concurrent use.

package ring

import "github.com/momentics/replaymem/api"

// Buffer is a fixed-capacity ring addressed in storage order.
type Buffer[T any] struct {
	data   []T
	cursor int
	length int
	total  uint64
}

// New allocates a ring of the given capacity; capacity must be positive.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, api.InvalidCapacity(capacity)
	}
	return &Buffer[T]{data: make([]T, capacity)}, nil
}

// Push writes item at the cursor and advances it.
func (b *Buffer[T]) Push(item T) {
	b.data[b.cursor] = item
	b.cursor++
	if b.cursor == len(b.data) {
		b.cursor = 0
	}
	if b.length < len(b.data) {
		b.length++
	}
	b.total++
}

// PushItems pushes each item in order.
func (b *Buffer[T]) PushItems(items ...T) {
	for _, item := range items {
		b.Push(item)
	}
}

// Get returns the item in storage slot index.
func (b *Buffer[T]) Get(index int) (T, error) {
	if index < 0 || index >= b.length {
		var zero T
		return zero, api.IndexOutOfRange(index, b.length)
	}
	return b.data[index], nil
}

// Len returns number of occupied slots.
func (b *Buffer[T]) Len() int { return b.length }

// Cap returns fixed buffer capacity.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Cursor returns the slot the next Push will write.
func (b *Buffer[T]) Cursor() int { return b.cursor }

// Total returns the number of items ever pushed, overwritten ones included.
func (b *Buffer[T]) Total() uint64 { return b.total }

// Occupied returns the occupied prefix of storage. Callers must not modify it.
func (b *Buffer[T]) Occupied() []T { return b.data[:b.length] }
