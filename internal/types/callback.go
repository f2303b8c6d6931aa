// Package types holds small generic containers used across the engine.
package types

import "iter"

// CallbackRegistry is an ordered registry of callbacks. Registration order
// is preserved when iterating, so observers fire in the order they were
// attached. The registry is not safe for concurrent use; the engine is
// single-threaded by design.
type CallbackRegistry[T any] struct {
	entries []callbackEntry[T]
	nextID  int
}

type callbackEntry[T any] struct {
	id int
	cb T
}

// Len returns the number of registered callbacks.
func (r *CallbackRegistry[T]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Add registers cb and returns a function that removes it. The returned
// function is idempotent.
func (r *CallbackRegistry[T]) Add(cb T) (remove func()) {
	id := r.nextID
	r.nextID++
	r.entries = append(r.entries, callbackEntry[T]{id, cb})

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		for i, e := range r.entries {
			if e.id == id {
				r.entries = append(r.entries[:i], r.entries[i+1:]...)
				return
			}
		}
	}
}

// All iterates the registered callbacks in registration order. The sequence
// is taken over a snapshot, so callbacks may add or remove registrations
// while iterating.
func (r *CallbackRegistry[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r == nil || len(r.entries) == 0 {
			return
		}
		snapshot := make([]T, 0, len(r.entries))
		for _, e := range r.entries {
			snapshot = append(snapshot, e.cb)
		}
		for _, cb := range snapshot {
			if !yield(cb) {
				return
			}
		}
	}
}
