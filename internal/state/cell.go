// Package state provides an observable value holder with one writer and any
// number of readers.
package state

import "sync"

// ReadOnly is the reader side of a Cell.
type ReadOnly[T any] interface {
	// Get returns the current snapshot.
	Get() T
	// Subscribe returns a channel that receives every value published after
	// the call, and a function that ends the subscription. Delivery is
	// conflated: a slow subscriber only sees the newest pending value. The
	// channel is closed on unsubscribe or when the cell is closed.
	Subscribe() (<-chan T, func())
	// Subscribers returns the number of live subscriptions.
	Subscribers() int
}

// Option configures a Cell.
type Option[T any] func(*Cell[T])

// WithCopy makes the cell hand out copies produced by fn, so readers can't
// mutate a shared snapshot.
func WithCopy[T any](fn func(T) T) Option[T] {
	return func(c *Cell[T]) {
		c.copy = fn
	}
}

// Cell holds a value and notifies subscribers when it is replaced.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	copy   func(T) T
	subs   map[uint64]chan T
	nextID uint64
	closed bool
}

// New creates a cell holding initial.
func New[T any](initial T, opts ...Option[T]) *Cell[T] {
	c := &Cell[T]{
		subs: make(map[uint64]chan T),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.value = c.clone(initial)
	return c
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clone(c.value)
}

// Set replaces the value and notifies subscribers. It returns false, and
// does nothing, once the cell is closed.
func (c *Cell[T]) Set(value T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	c.value = c.clone(value)
	for _, ch := range c.subs {
		publish(ch, c.clone(c.value))
	}
	return true
}

// Subscribe implements ReadOnly.
func (c *Cell[T]) Subscribe() (<-chan T, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan T, 1)
	if c.closed {
		close(ch)
		return ch, func() {}
	}

	id := c.nextID
	c.nextID++
	c.subs[id] = ch

	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (c *Cell[T]) Subscribers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}

// Close ends all subscriptions and freezes the value.
func (c *Cell[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}

// ReadOnly returns the reader view of the cell.
func (c *Cell[T]) ReadOnly() ReadOnly[T] {
	return readOnly[T]{cell: c}
}

func (c *Cell[T]) clone(value T) T {
	if c.copy == nil {
		return value
	}
	return c.copy(value)
}

// publish delivers value, replacing any value the subscriber hasn't read yet.
// Callers hold the write lock, so nothing else sends on ch concurrently.
func publish[T any](ch chan T, value T) {
	select {
	case ch <- value:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- value
}

type readOnly[T any] struct {
	cell *Cell[T]
}

func (r readOnly[T]) Get() T {
	return r.cell.Get()
}

func (r readOnly[T]) Subscribe() (<-chan T, func()) {
	return r.cell.Subscribe()
}

func (r readOnly[T]) Subscribers() int {
	return r.cell.Subscribers()
}
