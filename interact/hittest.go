// SPDX-License-Identifier: MIT

package interact

import (
	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/geometry"
	"github.com/katalvlaran/cubiq/lattice"
	"github.com/katalvlaran/cubiq/merge"
)

// Locator maps a lattice point to its screen position. (*lattice.Lattice).Locate
// has this shape.
type Locator[P lattice.Coord[P]] func(P) (geometry.Vec2, bool)

// Nearest returns the index of the connection closest to pos on screen and
// its distance, considering only distances strictly below tol. Connections
// with an endpoint the locator does not know are skipped.
//
// Complexity: O(n).
func Nearest[P lattice.Coord[P]](s connection.Set[P], locate Locator[P], pos geometry.Vec2, tol float64) (int, float64, bool) {
	best, bestDist := -1, tol
	for i, c := range s {
		a, okA := locate(c.A())
		b, okB := locate(c.B())
		if !okA || !okB {
			continue
		}
		if d := geometry.SegmentDistance(pos, a, b); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return -1, 0, false
	}
	return best, bestDist, true
}

// HitTestDelete removes the connection nearest to pos within tol. It returns
// the remaining set, the removed connection and whether anything was hit.
// The remaining set is not re-normalized; removing a connection never makes
// two others reducible.
func HitTestDelete[P lattice.Coord[P]](s connection.Set[P], locate Locator[P], pos geometry.Vec2, tol float64) (connection.Set[P], connection.Connection[P], bool) {
	i, _, ok := Nearest(s, locate, pos, tol)
	if !ok {
		return s, connection.Connection[P]{}, false
	}
	return s.Without(i), s[i], true
}

// ToggleDashedNear flips the dashed flag of the connection nearest to pos
// within tol and re-normalizes, since the flip may create new overlaps. It
// reports whether a toggle occurred.
func ToggleDashedNear[P lattice.Coord[P]](s connection.Set[P], locate Locator[P], pos geometry.Vec2, tol float64) (connection.Set[P], bool) {
	i, _, ok := Nearest(s, locate, pos, tol)
	if !ok {
		return s, false
	}
	next := s.Clone()
	next[i] = next[i].Toggled()
	return merge.Normalize(next), true
}
