// Package observable provides single-value cells that notify listeners on
// change.
package observable

// Listener is called with the new and previous value of a Cell.
type Listener[T any] func(value, old T)

type entry[T any] struct {
	id uint64
	fn Listener[T]
}

// Cell holds one value and the listeners subscribed to it.
// The zero value is an empty cell holding the zero value of T.
//
// Cell is not safe for concurrent use.
type Cell[T comparable] struct {
	value     T
	listeners []entry[T]
	nextID    uint64
}

// NewCell creates a cell holding value.
func NewCell[T comparable](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set stores value and notifies listeners if it differs from the current one.
// Listeners added or removed during notification take effect on the next Set.
func (c *Cell[T]) Set(value T) {
	if c.value == value {
		return
	}
	old := c.value
	c.value = value
	if len(c.listeners) == 0 {
		return
	}
	snapshot := make([]entry[T], len(c.listeners))
	copy(snapshot, c.listeners)
	for _, e := range snapshot {
		e.fn(value, old)
	}
}

// SetInitial stores value without notifying listeners.
func (c *Cell[T]) SetInitial(value T) {
	c.value = value
}

// Link subscribes fn and returns a function that unsubscribes it.
// Calling the returned function more than once is a no-op.
func (c *Cell[T]) Link(fn Listener[T]) (unlink func()) {
	if fn == nil {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, entry[T]{id: id, fn: fn})
	return func() { c.unlink(id) }
}

func (c *Cell[T]) unlink(id uint64) {
	for i, e := range c.listeners {
		if e.id == id {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// RemoveAllListeners drops every subscription.
func (c *Cell[T]) RemoveAllListeners() {
	clear(c.listeners)
	c.listeners = c.listeners[:0]
}

// Listeners returns the number of subscribed listeners.
func (c *Cell[T]) Listeners() int {
	return len(c.listeners)
}
