// Package episode stages the items of an in-progress episode before they are
// committed to a replay memory in one bulk insert.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package episode

import (
	"github.com/eapache/queue"

	"github.com/momentics/replaymem/api"
)

// Recorder[T] is an unbounded FIFO of staged items. Not safe for concurrent use.
type Recorder[T any] struct {
	q *queue.Queue
}

// NewRecorder returns an empty recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{q: queue.New()}
}

// Add stages one item.
func (r *Recorder[T]) Add(item T) {
	r.q.Add(item)
}

// Len returns the number of staged items.
func (r *Recorder[T]) Len() int {
	return r.q.Length()
}

// Peek returns the earliest staged item without removing it.
func (r *Recorder[T]) Peek() (T, error) {
	if r.q.Length() == 0 {
		var zero T
		return zero, api.NewError(api.ErrCodeEmpty, api.ErrEmpty.Error())
	}
	item, _ := r.q.Peek().(T)
	return item, nil
}

// Flush moves all staged items into dst in arrival order via one PushItems
// call and returns how many were moved.
func (r *Recorder[T]) Flush(dst api.Inserter[T]) int {
	n := r.q.Length()
	if n == 0 {
		return 0
	}
	items := make([]T, n)
	for i := range items {
		// nil interface values come back untyped; keep them as T's zero value.
		items[i], _ = r.q.Remove().(T)
	}
	dst.PushItems(items...)
	return n
}

// Discard drops every staged item.
func (r *Recorder[T]) Discard() {
	r.q = queue.New()
}
