// SPDX-License-Identifier: MIT

package merge

import (
	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/geometry"
	"github.com/katalvlaran/cubiq/lattice"
)

// Overlaps reports whether c1 and c2 lie on the same stretch of one line.
//
// A marked point overlaps a segment when it lies on it (at an endpoint or, on
// the 3×3 lattices, at the midpoint of a segment two steps long), and another
// marked point when both mark the same coordinate. Two segments overlap when
// all four endpoints are collinear, they share an endpoint and they continue
// in the same direction from it, i.e. they have more than that one point in
// common. Collinear segments that merely touch end to end, or share nothing,
// do not overlap.
func Overlaps[P lattice.Coord[P]](c1, c2 connection.Connection[P]) bool {
	switch {
	case c1.IsPoint() && c2.IsPoint():
		return c1.A() == c2.A()
	case c1.IsPoint():
		return onSegment(c1.A(), c2)
	case c2.IsPoint():
		return onSegment(c2.A(), c1)
	}
	if !collinear(c1.A(), c1.B(), c2.A(), c2.B()) || !sharesEndpoint(c1, c2) {
		return false
	}
	lo1, hi1, lo2, hi2 := intervals(c1, c2)
	return max(lo1, lo2) < min(hi1, hi2)
}

// touches reports whether the collinear connections c1 and c2 have at least
// one point in common.
func touches[P lattice.Coord[P]](c1, c2 connection.Connection[P]) bool {
	lo1, hi1, lo2, hi2 := intervals(c1, c2)
	return max(lo1, lo2) <= min(hi1, hi2)
}

// onSegment reports whether p lies on the closed segment c.
func onSegment[P lattice.Coord[P]](p P, c connection.Connection[P]) bool {
	if p == c.A() || p == c.B() {
		return true
	}
	if c.IsPoint() || !collinear(c.A(), c.B(), p) {
		return false
	}
	origin := lattice.Vector(c.A())
	dir := sub(lattice.Vector(c.B()), origin)
	t := dot(sub(lattice.Vector(p), origin), dir)
	return t >= 0 && t <= dot(dir, dir)
}

func sharesEndpoint[P lattice.Coord[P]](c1, c2 connection.Connection[P]) bool {
	return c1.A() == c2.A() || c1.A() == c2.B() || c1.B() == c2.A() || c1.B() == c2.B()
}

// collinear wraps geometry.Collinear for same-arity lattice points. A
// geometry failure reads as "not collinear", which makes the caller skip the
// merge.
func collinear[P lattice.Coord[P]](points ...P) bool {
	vs := make([]geometry.Vec, len(points))
	for i, p := range points {
		vs[i] = lattice.Vector(p)
	}
	ok, err := geometry.Collinear(vs...)
	return err == nil && ok
}

// intervals projects the endpoints of two collinear connections onto their
// common line and returns the closed parameter interval of each. Parameters
// are integer dot products, so comparisons are exact. If all four endpoints
// coincide every interval is [0,0].
func intervals[P lattice.Coord[P]](c1, c2 connection.Connection[P]) (lo1, hi1, lo2, hi2 int) {
	origin := lattice.Vector(c1.A())
	ends := []geometry.Vec{origin, lattice.Vector(c1.B()), lattice.Vector(c2.A()), lattice.Vector(c2.B())}

	var dir geometry.Vec
	for _, e := range ends[1:] {
		if d := sub(e, origin); !zero(d) {
			dir = d
			break
		}
	}
	if dir == nil {
		return 0, 0, 0, 0
	}
	t := make([]int, len(ends))
	for i, e := range ends {
		t[i] = dot(sub(e, origin), dir)
	}
	return min(t[0], t[1]), max(t[0], t[1]), min(t[2], t[3]), max(t[2], t[3])
}

func sub(a, b geometry.Vec) geometry.Vec {
	out := make(geometry.Vec, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func dot(a, b geometry.Vec) int {
	s := 0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func zero(v geometry.Vec) bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}
