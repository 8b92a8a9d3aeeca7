// SPDX-License-Identifier: MIT

package merge

import (
	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/lattice"
	"golang.org/x/exp/slices"
)

// Normalize returns the canonical form of s: no pair of its connections
// reduces any further under Segments. s itself is not modified.
//
// The scan starts from s.Canonical(), so the result depends only on which
// connections s holds and never on their order or orientation. It visits
// pairs (i,j), i<j, in order. When a pair changes, both entries are removed
// (j first, then i), the replacements are appended and the scan restarts from
// the first pair. The result is returned in canonical order as well.
//
// Normalize is idempotent: Normalize(Normalize(s)) equals Normalize(s).
//
// Termination: every Merged or Cancelled step removes a connection and every
// Split step keeps the count but strictly shortens one segment.
//
// Complexity: O(n²) per pass.
func Normalize[P lattice.Coord[P]](s connection.Set[P]) connection.Set[P] {
	out := s.Canonical()
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			r := Segments(out[i], out[j])
			if !r.Changed() {
				continue
			}
			out = slices.Delete(out, j, j+1)
			out = slices.Delete(out, i, i+1)
			out = append(out, r.Conns...)
			i = -1 // restart from the first pair
			break
		}
	}
	return out.Canonical()
}

// Add appends c to s and normalizes the result.
func Add[P lattice.Coord[P]](s connection.Set[P], c connection.Connection[P]) connection.Set[P] {
	next := make(connection.Set[P], 0, len(s)+1)
	next = append(next, s...)
	return Normalize(append(next, c))
}
