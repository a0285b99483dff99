package models

import "slices"

type entry[V any] struct {
	key   string
	value V
}

// Index is an insertion-ordered collection with constant-time lookup by key.
//
// The ordered sequence and the key lookup are private and only ever changed
// together, so every key reachable through Get appears exactly once in
// Values and vice versa. Entries are never removed. The zero value is ready
// to use.
type Index[V any] struct {
	entries []entry[V]
	lookup  map[string]V
}

// Len returns the number of entries.
func (ix *Index[V]) Len() int {
	return len(ix.entries)
}

// Get returns the value stored under key.
func (ix *Index[V]) Get(key string) (V, bool) {
	v, ok := ix.lookup[key]
	return v, ok
}

// Has reports whether key is present.
func (ix *Index[V]) Has(key string) bool {
	_, ok := ix.lookup[key]
	return ok
}

// Insert appends value under key. It returns false and leaves the index
// unchanged when key is already present.
func (ix *Index[V]) Insert(key string, value V) bool {
	if ix.Has(key) {
		return false
	}
	if ix.lookup == nil {
		ix.lookup = make(map[string]V)
	}
	ix.entries = append(ix.entries, entry[V]{key: key, value: value})
	ix.lookup[key] = value
	return true
}

// GetOrInsert returns the value under key, creating it with create on first
// sight. The second result reports whether a new entry was made.
func (ix *Index[V]) GetOrInsert(key string, create func() V) (V, bool) {
	if v, ok := ix.lookup[key]; ok {
		return v, false
	}
	v := create()
	ix.Insert(key, v)
	return v, true
}

// Keys returns the keys in sequence order.
func (ix *Index[V]) Keys() []string {
	keys := make([]string, len(ix.entries))
	for i, e := range ix.entries {
		keys[i] = e.key
	}
	return keys
}

// Values returns the values in sequence order.
func (ix *Index[V]) Values() []V {
	values := make([]V, len(ix.entries))
	for i, e := range ix.entries {
		values[i] = e.value
	}
	return values
}

// Each calls fn for every entry in sequence order.
func (ix *Index[V]) Each(fn func(key string, value V)) {
	for _, e := range ix.entries {
		fn(e.key, e.value)
	}
}

// SortStableFunc reorders the sequence by cmp, keeping the relative order of
// equal elements. Lookups are unaffected.
func (ix *Index[V]) SortStableFunc(cmp func(a, b V) int) {
	slices.SortStableFunc(ix.entries, func(a, b entry[V]) int {
		return cmp(a.value, b.value)
	})
}

// Clone returns an independent index whose values are produced by dup.
func (ix *Index[V]) Clone(dup func(V) V) Index[V] {
	var out Index[V]
	for _, e := range ix.entries {
		out.Insert(e.key, dup(e.value))
	}
	return out
}
