// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cubiq/geometry"
)

// New builds a Lattice whose axis i holds extent.Axis(i) points, numbered
// 0..extent.Axis(i)-1. place computes the screen position of every node;
// a nil place leaves all positions at the origin.
//
// Nodes are stored row-major: the first axis varies fastest, so a 3D index is
// col + row*cols + layer*rows*cols.
//
// Errors:
//   - ErrEmptyLattice if any axis extent is < 1.
//
// Complexity: O(N) time and memory.
func New[P Coord[P]](extent P, place Placement[P]) (*Lattice[P], error) {
	total := 1
	strides := make([]int, extent.Dim())
	for i := range strides {
		n := extent.Axis(i)
		if n < 1 {
			return nil, fmt.Errorf("axis %d has extent %d: %w", i, n, ErrEmptyLattice)
		}
		strides[i] = total
		total *= n
	}
	l := &Lattice[P]{
		extent:  extent,
		strides: strides,
		nodes:   make([]Node[P], total),
	}
	for idx := range l.nodes {
		c := l.Coordinate(idx)
		n := Node[P]{Coord: c}
		if place != nil {
			n.Pos = place(c)
		}
		l.nodes[idx] = n
	}

	return l, nil
}

// Extent returns the per-axis point counts.
func (l *Lattice[P]) Extent() P { return l.extent }

// Len returns the number of points.
func (l *Lattice[P]) Len() int { return len(l.nodes) }

// InBounds reports whether p lies within the lattice.
// Complexity: O(d).
func (l *Lattice[P]) InBounds(p P) bool {
	for i := 0; i < p.Dim(); i++ {
		if a := p.Axis(i); a < 0 || a >= l.extent.Axis(i) {
			return false
		}
	}
	return true
}

// Index maps p to its row-major node index.
func (l *Lattice[P]) Index(p P) (int, error) {
	if !l.InBounds(p) {
		return -1, fmt.Errorf("%s: %w", p, ErrOutOfBounds)
	}
	idx := 0
	for i, s := range l.strides {
		idx += p.Axis(i) * s
	}
	return idx, nil
}

// Coordinate converts a row-major index back to a coordinate.
// Complexity: O(d).
func (l *Lattice[P]) Coordinate(idx int) P {
	var p P
	for i := 0; i < p.Dim(); i++ {
		n := l.extent.Axis(i)
		p = p.WithAxis(i, idx%n)
		idx /= n
	}
	return p
}

// Nodes returns a copy of all nodes in index order.
func (l *Lattice[P]) Nodes() []Node[P] {
	out := make([]Node[P], len(l.nodes))
	copy(out, l.nodes)
	return out
}

// Node returns the node at p.
func (l *Lattice[P]) Node(p P) (Node[P], bool) {
	idx, err := l.Index(p)
	if err != nil {
		return Node[P]{}, false
	}
	return l.nodes[idx], true
}

// Locate returns the screen position of p. It has the shape expected by the
// hit-testing helpers in package interact.
func (l *Lattice[P]) Locate(p P) (geometry.Vec2, bool) {
	n, ok := l.Node(p)
	return n.Pos, ok
}

// PointNear returns the point closest to pos whose screen distance is at most
// radius.
// Complexity: O(N).
func (l *Lattice[P]) PointNear(pos geometry.Vec2, radius float64) (P, bool) {
	var best P
	found := false
	bestDist := math.Inf(1)
	for _, n := range l.nodes {
		d := pos.Sub(n.Pos).Len()
		if d <= radius && d < bestDist {
			best, bestDist, found = n.Coord, d, true
		}
	}
	return best, found
}

// Select marks p as selected. Other selections are left untouched.
func (l *Lattice[P]) Select(p P) error {
	idx, err := l.Index(p)
	if err != nil {
		return err
	}
	l.nodes[idx].Selected = true
	return nil
}

// IsSelected reports the selection flag of p.
func (l *Lattice[P]) IsSelected(p P) bool {
	n, ok := l.Node(p)
	return ok && n.Selected
}

// Selected returns the coordinates of all selected points in index order.
func (l *Lattice[P]) Selected() []P {
	var out []P
	for _, n := range l.nodes {
		if n.Selected {
			out = append(out, n.Coord)
		}
	}
	return out
}

// ResetSelection clears every selection flag.
func (l *Lattice[P]) ResetSelection() {
	for i := range l.nodes {
		l.nodes[i].Selected = false
	}
}
