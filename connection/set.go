// SPDX-License-Identifier: MIT

package connection

import (
	"sort"

	"github.com/katalvlaran/cubiq/lattice"
	"golang.org/x/exp/slices"
)

// Set is an ordered collection of connections. Before normalization it may
// hold duplicates and reducible pairs; see package merge.
type Set[P lattice.Coord[P]] []Connection[P]

// Clone returns an independent copy of s.
func (s Set[P]) Clone() Set[P] {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

// Index returns the position of the first connection Equal to c, or -1.
func (s Set[P]) Index(c Connection[P]) int {
	return slices.IndexFunc(s, c.Equal)
}

// Contains reports whether s holds a connection Equal to c.
func (s Set[P]) Contains(c Connection[P]) bool {
	return s.Index(c) >= 0
}

// IndexConnecting returns the position of the first connection joining p and
// q regardless of its dashed flag, or -1.
func (s Set[P]) IndexConnecting(p, q P) int {
	return slices.IndexFunc(s, func(c Connection[P]) bool { return c.Connects(p, q) })
}

// Without returns a copy of s with the element at i removed.
func (s Set[P]) Without(i int) Set[P] {
	return slices.Delete(s.Clone(), i, i+1)
}

// Keys returns the canonical keys of s sorted deterministically. Two sets hold
// the same connections iff their Keys are equal.
func (s Set[P]) Keys() []Key[P] {
	keys := make([]Key[P], len(s))
	for i, c := range s {
		keys[i] = c.Key()
	}
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
	return keys
}

// Canonical returns s with every connection oriented Lo to Hi and sorted as
// Keys sorts. Equal sets have identical canonical forms.
func (s Set[P]) Canonical() Set[P] {
	keys := s.Keys()
	out := make(Set[P], len(keys))
	for i, k := range keys {
		out[i] = k.Connection()
	}
	return out
}

// Equal reports whether s and o contain the same connections by Key, with the
// same multiplicities. Order is irrelevant.
//
// Complexity: O(n) expected.
func (s Set[P]) Equal(o Set[P]) bool {
	if len(s) != len(o) {
		return false
	}
	counts := make(map[Key[P]]int, len(s))
	for _, c := range s {
		counts[c.Key()]++
	}
	for _, c := range o {
		k := c.Key()
		if counts[k] == 0 {
			return false
		}
		counts[k]--
	}
	return true
}

func keyLess[P lattice.Coord[P]](a, b Key[P]) bool {
	if a.Lo != b.Lo {
		return lattice.Less(a.Lo, b.Lo)
	}
	if a.Hi != b.Hi {
		return lattice.Less(a.Hi, b.Hi)
	}
	return !a.Dashed && b.Dashed
}
