// Package memo provides bounded memoization tables for pure functions,
// built out of lazy cells.
//
// A memo table is nothing more than a keyed family of deferred values: each
// key owns a cell that computes its result at most once, and the table
// bounds how many cells are kept alive. Memoizing a function is therefore
// the same discipline as deferring a value—it only makes sense when the
// function is pure: not just deterministic, but referentially transparent.
//
// Features:
//   - Table: sharded, bounded key→value memoization. Shards are picked by
//     xxhash of the key's string form; within a shard, two generations
//     rotate when the size bound is hit, so the table never grows without
//     limit and eviction is amortized O(1).
//   - Func1, Func2: typed, generic memoizers wrapping a Table for the
//     common arities.
//   - Computation runs outside the table locks, so a slow producer for one
//     key never blocks lookups for other keys in the same shard.
//
// WARNING: Do not memoize impure functions (those depending on time, I/O,
// mutable globals, etc). The table will happily serve a stale answer.
package memo
