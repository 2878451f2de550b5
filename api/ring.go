// Package api
// Author: momentics@gmail.com
//
// Bounded replay memory contracts.

package api

// Inserter is the write side of a replay memory.
type Inserter[T any] interface {
	// Push writes item at the cursor, overwriting the slot once full.
	Push(item T)
	// PushItems is equivalent to calling Push for each item in order.
	PushItems(items ...T)
}

// Memory is a fixed-capacity ring that overwrites by storage position.
type Memory[T any] interface {
	Inserter[T]
	// Get returns the item stored at slot index, or ErrIndexOutOfRange.
	Get(index int) (T, error)
	// Len returns the number of occupied slots.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
}
