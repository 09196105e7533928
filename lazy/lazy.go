package lazy

import (
	"sync"
)

// Lazy is a deferred, memoized value of type T.
//
// A cell is in exactly one of two states: unevaluated, holding a producer,
// or evaluated, holding the computed value. The first Get runs the producer
// and moves the cell to the evaluated state; every later Get returns the
// cached value without recomputation. The transition is one-way.
//
// The zero value of Lazy is not usable; construct cells with New or
// FromValue.
type Lazy[T any] struct {
	mu        sync.Mutex
	producer  func() T
	value     T
	evaluated bool
}

// New returns an unevaluated cell holding producer.
// The producer does not run until the first Get.
func New[T any](producer func() T) *Lazy[T] {
	if producer == nil {
		panic("lazy: nil producer")
	}
	return &Lazy[T]{producer: producer}
}

// FromValue returns a cell already in the evaluated state holding v.
// Get never recomputes anything for such a cell.
func FromValue[T any](v T) *Lazy[T] {
	return &Lazy[T]{value: v, evaluated: true}
}

// Get returns the value of the cell, running the producer on first access.
//
// Concurrent first readers serialize on the cell; the producer still runs
// once. If the producer panics, the panic propagates to the caller and the
// cell stays unevaluated, so a later Get runs the producer again. Whatever
// side effects the producer performs therefore happen exactly once on the
// success path.
func (l *Lazy[T]) Get() T {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.evaluated {
		// A panic here unwinds before the state flips, keeping the cell
		// retryable.
		l.value = l.producer()
		l.evaluated = true
		l.producer = nil
	}
	return l.value
}

// Forced reports whether the cell has reached the evaluated state.
// This is observation only; the state itself cannot be set from outside.
func (l *Lazy[T]) Forced() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.evaluated
}
