package models

import (
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// Tally accumulates integer amounts per holding name.
// Holdings that were never added read as zero. Amounts only ever grow by
// addition; there is no way to overwrite one.
type Tally[N constraints.Integer] struct {
	amounts map[string]N
}

// Add accumulates n under holding, starting from zero on first sight.
func (t *Tally[N]) Add(holding string, n N) {
	if t.amounts == nil {
		t.amounts = make(map[string]N)
	}
	t.amounts[holding] += n
}

// Get returns the amount for holding, or zero if it was never added.
func (t *Tally[N]) Get(holding string) N {
	return t.amounts[holding]
}

// Total returns the sum over all holdings.
func (t *Tally[N]) Total() N {
	var sum N
	for _, n := range t.amounts {
		sum += n
	}
	return sum
}

// Holdings returns the names of every holding ever added, zero amounts
// included, in lexical order.
func (t *Tally[N]) Holdings() []string {
	return slices.Sorted(maps.Keys(t.amounts))
}

// AddAll accumulates every amount of other into t.
func (t *Tally[N]) AddAll(other *Tally[N]) {
	for h, n := range other.amounts {
		t.Add(h, n)
	}
}

// Clone returns an independent copy.
func (t *Tally[N]) Clone() Tally[N] {
	return Tally[N]{amounts: maps.Clone(t.amounts)}
}
