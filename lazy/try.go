package lazy

import (
	"fmt"
	"sync"
)

// ErrMaxAttempts marks a NewTryRetry cell that exhausted its attempt budget
// within a single force. Match with errors.Is; the last producer error is
// wrapped alongside it.
var ErrMaxAttempts = fmt.Errorf("lazy: max attempts reached")

// Try is the error-aware sibling of Lazy: a deferred, memoized value whose
// producer fails with an error instead of a panic.
//
// A successful force memoizes the value and drops the producer. A failed
// force returns the error unwrapped and leaves the cell unevaluated, so the
// next Get runs the producer again. Errors are never cached.
type Try[T any] struct {
	mu        sync.Mutex
	producer  func() (T, error)
	value     T
	evaluated bool
}

// NewTry returns an unevaluated cell holding a fallible producer.
func NewTry[T any](producer func() (T, error)) *Try[T] {
	if producer == nil {
		panic("lazy: nil producer")
	}
	return &Try[T]{producer: producer}
}

// TryFromValue returns a cell already evaluated to v. Get never fails for
// such a cell.
func TryFromValue[T any](v T) *Try[T] {
	return &Try[T]{value: v, evaluated: true}
}

// NewTryRetry returns a cell whose producer is attempted up to maxAttempts
// times per force. Attempts stop at the first success; once the budget is
// spent, Get returns an error wrapping both ErrMaxAttempts and the last
// producer error. The cell stays unevaluated across failed forces, so a
// later Get gets a fresh attempt budget.
func NewTryRetry[T any](producer func() (T, error), maxAttempts int) *Try[T] {
	if maxAttempts < 1 {
		panic("lazy: maxAttempts must be at least 1")
	}
	return NewTry(func() (T, error) {
		var lastErr error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			v, err := producer()
			if err == nil {
				return v, nil
			}
			lastErr = err
		}
		var zero T
		return zero, fmt.Errorf("%w: %d attempts, %w", ErrMaxAttempts, maxAttempts, lastErr)
	})
}

// Get returns the value of the cell, running the producer on first access.
// On failure the error propagates unwrapped and the cell remains
// unevaluated and retryable.
func (t *Try[T]) Get() (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.evaluated {
		return t.value, nil
	}
	v, err := t.producer()
	if err != nil {
		var zero T
		return zero, err
	}
	t.value = v
	t.evaluated = true
	t.producer = nil
	return v, nil
}

// Forced reports whether the cell has reached the evaluated state.
func (t *Try[T]) Forced() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.evaluated
}

// TryMap returns an unevaluated cell that, when forced, forces t and feeds
// the value through fn. Either failure short-circuits.
func TryMap[T, U any](t *Try[T], fn func(T) (U, error)) *Try[U] {
	return NewTry(func() (U, error) {
		v, err := t.Get()
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(v)
	})
}

// Must bridges a fallible cell into the plain Lazy world: forcing the
// returned cell panics with the producer's error instead of returning it.
func Must[T any](t *Try[T]) *Lazy[T] {
	return New(func() T {
		v, err := t.Get()
		if err != nil {
			panic(err)
		}
		return v
	})
}
