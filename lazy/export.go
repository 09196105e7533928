package lazy

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnevaluatedSnapshot is returned by UnmarshalJSON when the input claims
// an unevaluated cell. The exported form never carries a producer, so such
// input cannot have come from Export or MarshalJSON.
var ErrUnevaluatedSnapshot = errors.New("lazy: snapshot is not in the evaluated shape")

// Snapshot is the plain, two-field export shape of a cell. Exporting forces
// first, so Evaluated is always true in anything this package produces.
type Snapshot[T any] struct {
	Evaluated bool `json:"evaluated"`
	Value     T    `json:"value"`
}

// Export forces the cell and returns its evaluated snapshot.
func (l *Lazy[T]) Export() Snapshot[T] {
	return Snapshot[T]{Evaluated: true, Value: l.Get()}
}

// String forces the cell and returns the value's string representation.
// Lazy implements fmt.Stringer.
func (l *Lazy[T]) String() string {
	return fmt.Sprintf("%v", l.Get())
}

// MarshalJSON forces the cell and marshals its snapshot. A producer is
// never serialized.
func (l *Lazy[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Export())
}

// UnmarshalJSON replaces the cell's state with the snapshot's value, in the
// evaluated state. Input with "evaluated": false is rejected with
// ErrUnevaluatedSnapshot since a producer cannot round-trip through JSON.
func (l *Lazy[T]) UnmarshalJSON(data []byte) error {
	var snap Snapshot[T]
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	if !snap.Evaluated {
		return ErrUnevaluatedSnapshot
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.value = snap.Value
	l.evaluated = true
	l.producer = nil
	return nil
}
