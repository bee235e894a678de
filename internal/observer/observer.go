// Package observer provides a synchronous listener registry.
//
// Listeners are invoked in subscription order on the caller's goroutine.
// Emit takes a snapshot of the registry first, so a listener may subscribe
// or unsubscribe (itself or others) while being notified.
package observer

// Listeners holds callbacks for values of type T.
type Listeners[T any] struct {
	nextID  int
	entries []entry[T]
}

type entry[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it.
// The returned function may be called any number of times.
func (l *Listeners[T]) Subscribe(fn func(T)) func() {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, entry[T]{id: id, fn: fn})
	return func() { l.remove(id) }
}

func (l *Listeners[T]) remove(id int) {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

// Emit calls every registered listener with v.
func (l *Listeners[T]) Emit(v T) {
	if len(l.entries) == 0 {
		return
	}
	snapshot := make([]entry[T], len(l.entries))
	copy(snapshot, l.entries)
	for _, e := range snapshot {
		if !l.has(e.id) {
			continue
		}
		e.fn(v)
	}
}

func (l *Listeners[T]) has(id int) bool {
	for _, e := range l.entries {
		if e.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners.
func (l *Listeners[T]) Len() int {
	return len(l.entries)
}

// Clear removes all listeners.
func (l *Listeners[T]) Clear() {
	l.entries = nil
}
