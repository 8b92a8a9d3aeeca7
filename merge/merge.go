// SPDX-License-Identifier: MIT

package merge

import (
	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/lattice"
)

// Kind classifies the outcome of merging one pair of connections.
type Kind int

const (
	// Separate means the pair does not reduce; both connections stay.
	Separate Kind = iota
	// Merged means both connections are replaced by the single Result.Conns[0].
	Merged
	// Split means both connections are replaced by Result.Conns: the shorter
	// segment as drawn, then the uncovered remainder of the longer one.
	Split
	// Cancelled means both connections are removed.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case Separate:
		return "separate"
	case Merged:
		return "merged"
	case Split:
		return "split"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Result is what Segments decided for a pair.
type Result[P lattice.Coord[P]] struct {
	Kind  Kind
	Conns connection.Set[P] // replacements for the pair; empty for Separate and Cancelled
}

// Changed reports whether the pair has to be replaced.
func (r Result[P]) Changed() bool { return r.Kind != Separate }

// Segments merges two connections of the same lattice.
//
// Decision order:
//  1. A marked point overlapping a segment is absorbed: the segment is
//     returned unchanged, whatever the dashed flags.
//  2. Different dashed flags: non-overlapping pairs stay Separate. For an
//     overlapping pair equal lengths cancel; otherwise the shorter connection
//     is kept as is and the longer one loses the endpoints it shares with the
//     shorter one (Split). If the longer one would not keep two distinct
//     points it is dropped and only the shorter one remains (Merged).
//  3. Equal dashed flags: collinear connections that touch are merged into
//     the segment between the two endpoints farthest apart. Anything else
//     stays Separate.
//
// Neither argument is modified.
func Segments[P lattice.Coord[P]](c1, c2 connection.Connection[P]) Result[P] {
	overlap := Overlaps(c1, c2)

	if overlap && c1.IsPoint() != c2.IsPoint() {
		if c1.IsPoint() {
			return merged(c2)
		}
		return merged(c1)
	}

	if c1.Dashed() != c2.Dashed() {
		if !overlap {
			return Result[P]{Kind: Separate}
		}
		return resolveDashed(c1, c2)
	}

	if !collinear(c1.A(), c1.B(), c2.A(), c2.B()) || !touches(c1, c2) {
		return Result[P]{Kind: Separate}
	}
	a, b := farthest(c1.A(), c1.B(), c2.A(), c2.B())
	return merged(connection.New(a, b, c1.Dashed()))
}

// resolveDashed handles two overlapping connections with different dashed
// flags: the shorter one stays, the longer one is cut back.
func resolveDashed[P lattice.Coord[P]](c1, c2 connection.Connection[P]) Result[P] {
	l1, l2 := lengthSq(c1), lengthSq(c2)
	if l1 == l2 {
		return Result[P]{Kind: Cancelled}
	}
	short, long := c1, c2
	if l1 > l2 {
		short, long = c2, c1
	}

	var rest []P
	for _, p := range []P{long.A(), long.B()} {
		if p != short.A() && p != short.B() {
			rest = appendUnique(rest, p)
		}
	}
	for _, p := range []P{short.A(), short.B()} {
		if p != long.A() && p != long.B() {
			rest = appendUnique(rest, p)
		}
	}
	if len(rest) != 2 {
		return merged(short)
	}
	return Result[P]{
		Kind:  Split,
		Conns: connection.Set[P]{short, connection.New(rest[0], rest[1], long.Dashed())},
	}
}

func merged[P lattice.Coord[P]](c connection.Connection[P]) Result[P] {
	return Result[P]{Kind: Merged, Conns: connection.Set[P]{c}}
}

// farthest returns the pair of points with the greatest distance, scanning
// pairs in index order and keeping the first maximum.
func farthest[P lattice.Coord[P]](points ...P) (P, P) {
	bi, bj, best := 0, 0, -1
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := distSq(points[i], points[j]); d > best {
				bi, bj, best = i, j, d
			}
		}
	}
	return points[bi], points[bj]
}

func lengthSq[P lattice.Coord[P]](c connection.Connection[P]) int {
	return distSq(c.A(), c.B())
}

func distSq[P lattice.Coord[P]](a, b P) int {
	d := sub(lattice.Vector(a), lattice.Vector(b))
	return dot(d, d)
}

func appendUnique[P comparable](ps []P, p P) []P {
	for _, q := range ps {
		if q == p {
			return ps
		}
	}
	return append(ps, p)
}
