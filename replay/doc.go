// Package replay
// Author: momentics <momentics@gmail.com>
//
// Bounded replay memory for learning loops and other producers that only
// need the most recent N items.
//
// Memory[T] keeps a fixed slot array and a wrapping write cursor. Once full,
// every push overwrites the slot under the cursor. Get addresses storage
// slots directly: after wraparound, index 0 is whatever was last written to
// slot 0, not the oldest surviving item.
//
// Memory[T] performs no locking. Share it between goroutines through
// Guarded[T] or an equivalent external lock.
package replay
