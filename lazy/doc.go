// Package lazy provides a deferred, memoized value cell.
//
// A Lazy cell is not just a cache around a function call.
// A Lazy cell is a tool that *forces the developer to ask*:
//
//	→ "Does this value need to exist before someone reads it?"
//	→ "Who pays for this computation, and when?"
//
// That question is not about performance—it's about ownership of effects.
// Deferring a computation makes the moment it runs an explicit, observable
// event instead of an accident of initialization order.
//
// The centerpiece is the Lazy type: a two-state cell that holds either an
// unevaluated producer or a computed value. The transition is monotonic,
// happens on the first Get, and on the success path the producer runs at
// most once for the lifetime of the cell. Around it the package offers the
// usual algebraic combinators (Map, Bind, Extend, Apply, Join) plus an
// error-aware sibling, Try, for producers that fail with an error rather
// than a panic.
//
// Features:
//   - New / FromValue: deferred and pre-computed construction.
//   - Map, Bind, Extend, Apply, Join, Flatten: combinators that compose
//     without forcing anything early.
//   - Safe for concurrent use: racing first readers serialize and the
//     producer still runs once.
//   - Retryable on failure: a producer that panics (or, for Try, returns an
//     error) leaves the cell unevaluated, so the next Get tries again.
//   - JSON export is always in the evaluated shape; a producer never leaks
//     into a serialized form.
//
// WARNING: A producer must not force its own cell, directly or through a
// combinator chain. Self-reference deadlocks.
package lazy
