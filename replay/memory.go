// File: replay/memory.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package replay

import (
	"fmt"
	"iter"
	"strings"

	"github.com/momentics/replaymem/api"
	"github.com/momentics/replaymem/internal/ring"
)

// Ensure compile-time compliance.
var _ api.Memory[any] = (*Memory[any])(nil)

// Memory[T] is a fixed-capacity replay memory over ring.Buffer[T].
// Storage is reachable only through insertion and positional reads.
type Memory[T any] struct {
	buf *ring.Buffer[T]
}

// New creates a memory holding at most capacity items.
func New[T any](capacity int) (*Memory[T], error) {
	buf, err := ring.New[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Memory[T]{buf: buf}, nil
}

// Push writes item at the cursor, overwriting the slot once full.
func (m *Memory[T]) Push(item T) { m.buf.Push(item) }

// PushItems pushes each item in order.
func (m *Memory[T]) PushItems(items ...T) { m.buf.PushItems(items...) }

// Get returns the item in storage slot index, or api.ErrIndexOutOfRange.
func (m *Memory[T]) Get(index int) (T, error) { return m.buf.Get(index) }

// Len returns the number of occupied slots.
func (m *Memory[T]) Len() int { return m.buf.Len() }

// Cap returns the fixed capacity.
func (m *Memory[T]) Cap() int { return m.buf.Cap() }

// Cursor returns the slot the next Push will write.
func (m *Memory[T]) Cursor() int { return m.buf.Cursor() }

// Total returns the number of items ever pushed.
func (m *Memory[T]) Total() uint64 { return m.buf.Total() }

// PushSeq pushes every item yielded by seq, in order.
func (m *Memory[T]) PushSeq(seq iter.Seq[T]) {
	for item := range seq {
		m.Push(item)
	}
}

// IsFull reports whether every slot is occupied.
func (m *Memory[T]) IsFull() bool {
	return m.Len() == m.Cap()
}

// IsEmpty reports whether nothing has been pushed yet.
func (m *Memory[T]) IsEmpty() bool {
	return m.Len() == 0
}

// Items returns a copy of the occupied slots in storage order.
func (m *Memory[T]) Items() []T {
	occupied := m.buf.Occupied()
	out := make([]T, len(occupied))
	copy(out, occupied)
	return out
}

// String renders the occupied slots in storage order, e.g. "Memory([5, 1, 2])".
func (m *Memory[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Memory([")
	for i, item := range m.buf.Occupied() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, item)
	}
	sb.WriteString("])")
	return sb.String()
}
