package memo

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/BlueGhostGH/moonad/lazy"
)

// Table is a sharded, bounded memoization table. Each key owns a lazy cell,
// so its producer runs at most once even when concurrent callers race on
// the first lookup.
//
// Capacity is bounded per shard with two rotating generations: when the
// live generation fills up, it becomes the fallback generation and a fresh
// one takes its place. A key surviving in the fallback generation is still
// served from there; keys evicted with the oldest generation are recomputed
// on next use.
type Table[K comparable, V any] struct {
	shards []*shard[K, V]
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	gens    [2]map[K]*lazy.Lazy[V]
	head    int
	size    uint32
	maxSize uint32
}

// NewTable returns a table keeping up to maxSize entries per generation in
// each of numShards shards. maxSize must be positive; numShards values
// below 1 are treated as 1.
func NewTable[K comparable, V any](maxSize uint32, numShards int) *Table[K, V] {
	if maxSize == 0 {
		panic("memo: maxSize must be greater than 0")
	}
	if numShards < 1 {
		numShards = 1
	}
	shards := make([]*shard[K, V], numShards)
	for i := range shards {
		shards[i] = &shard[K, V]{
			gens:    [2]map[K]*lazy.Lazy[V]{{}, {}},
			maxSize: maxSize,
		}
	}
	return &Table[K, V]{shards: shards}
}

// Do returns the memoized value for key, computing it with fn if the key
// has no live cell. fn runs outside the shard lock.
func (t *Table[K, V]) Do(key K, fn func() V) V {
	return t.shardFor(key).cell(key, fn).Get()
}

// Contains reports whether key currently has a live cell, forced or not.
func (t *Table[K, V]) Contains(key K) bool {
	s := t.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.gens[s.head][key]; ok {
		return true
	}
	_, ok := s.gens[1-s.head][key]
	return ok
}

func (t *Table[K, V]) shardFor(key K) *shard[K, V] {
	if len(t.shards) == 1 {
		return t.shards[0]
	}
	idx := xxhash.Sum64String(keyString(key)) % uint64(len(t.shards))
	return t.shards[idx]
}

// keyString mirrors the cell-key normalization of fmt.Stringer keys: a key
// that knows how to print itself is hashed by that form.
func keyString(key any) string {
	if stringer, ok := key.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%v", key)
}

// cell returns the live cell for key, inserting an unevaluated one if
// needed. Insertion may rotate generations; the returned cell is forced by
// the caller after the lock is released.
func (s *shard[K, V]) cell(key K, fn func() V) *lazy.Lazy[V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.gens[s.head][key]; ok {
		return c
	}
	if c, ok := s.gens[1-s.head][key]; ok {
		return c
	}
	if s.size >= s.maxSize {
		s.head = 1 - s.head
		s.gens[s.head] = make(map[K]*lazy.Lazy[V], s.maxSize)
		s.size = 0
	}
	c := lazy.New(fn)
	s.gens[s.head][key] = c
	s.size++
	return c
}
