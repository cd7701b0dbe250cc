// Package reactive provides a small observable value container.
//
// Renderers and other passive collaborators subscribe to values owned by the
// simulation; the simulation itself reads through Peek to avoid triggering
// notification re-entrancy from inside an update.
package reactive

// Value holds a current value of a comparable type and an ordered list of
// subscribers. Writes are equality-gated: setting the same value again does
// not notify anyone.
type Value[T comparable] struct {
	current     T
	subscribers []subscriber[T]
	nextID      int
}

type subscriber[T comparable] struct {
	id int
	fn func(T)
}

// New creates a Value holding the given initial value.
func New[T comparable](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.current
}

// Peek returns the current value without any subscription side effect.
// It is the read used from inside simulation code.
func (v *Value[T]) Peek() T {
	return v.current
}

// Set updates the value and synchronously notifies every subscriber in
// subscription order. If next equals the current value nothing happens.
func (v *Value[T]) Set(next T) {
	if next == v.current {
		return
	}
	v.current = next
	for _, s := range v.subscribers {
		s.fn(next)
	}
}

// Subscribe registers fn to be called on every change. The returned func
// removes the subscription; calling it more than once is harmless.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := v.nextID
	v.nextID++
	v.subscribers = append(v.subscribers, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, s := range v.subscribers {
			if s.id == id {
				v.subscribers = append(v.subscribers[:i], v.subscribers[i+1:]...)
				return
			}
		}
	}
}
