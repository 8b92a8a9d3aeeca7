// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cubiq/geometry"
)

// Size is the number of points along every axis of the puzzle lattices.
const Size = 3

// Coord is satisfied by lattice coordinate values of a fixed arity.
// P is the implementing type itself, so WithAxis can return a new P.
type Coord[P any] interface {
	comparable
	// Dim is the number of axes.
	Dim() int
	// Axis returns the i-th component.
	Axis(i int) int
	// WithAxis returns a copy with the i-th component set to v.
	WithAxis(i, v int) P
	fmt.Stringer
}

// Point2 is a (col,row) coordinate on a projection plane.
type Point2 [2]int

// Point3 is a (col,row,layer) coordinate in the solid lattice.
type Point3 [3]int

// P2 builds a Point2.
func P2(col, row int) Point2 { return Point2{col, row} }

// P3 builds a Point3.
func P3(col, row, layer int) Point3 { return Point3{col, row, layer} }

// Dim returns 2.
func (p Point2) Dim() int { return 2 }

// Axis returns coordinate i: 0 is the column, 1 the row.
func (p Point2) Axis(i int) int { return p[i] }

// Col returns the column.
func (p Point2) Col() int { return p[0] }

// Row returns the row.
func (p Point2) Row() int { return p[1] }

// String formats p as "(col,row)".
func (p Point2) String() string { return format(p[:]) }

// WithAxis returns a copy of p with coordinate i set to v.
func (p Point2) WithAxis(i, v int) Point2 {
	p[i] = v
	return p
}

// Dim returns 3.
func (p Point3) Dim() int { return 3 }

// Axis returns coordinate i: 0 is the column, 1 the row, 2 the layer.
func (p Point3) Axis(i int) int { return p[i] }

// Col returns the column.
func (p Point3) Col() int { return p[0] }

// Row returns the row.
func (p Point3) Row() int { return p[1] }

// Layer returns the depth layer.
func (p Point3) Layer() int { return p[2] }

// String formats p as "(col,row,layer)".
func (p Point3) String() string { return format(p[:]) }

// WithAxis returns a copy of p with coordinate i set to v.
func (p Point3) WithAxis(i, v int) Point3 {
	p[i] = v
	return p
}

func format(axes []int) string {
	parts := make([]string, len(axes))
	for i, a := range axes {
		parts[i] = fmt.Sprint(a)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Vector converts p into a geometry.Vec.
func Vector[P Coord[P]](p P) geometry.Vec {
	v := make(geometry.Vec, p.Dim())
	for i := range v {
		v[i] = p.Axis(i)
	}
	return v
}

// FromVector builds a P from v. The arity of v must equal the arity of P.
func FromVector[P Coord[P]](v []int) (P, error) {
	var p P
	if len(v) != p.Dim() {
		return p, fmt.Errorf("lattice: %d axes for a %d-axis point: %w", len(v), p.Dim(), geometry.ErrDimensionMismatch)
	}
	for i, c := range v {
		p = p.WithAxis(i, c)
	}
	return p, nil
}

// Less orders coordinates lexicographically by axis.
func Less[P Coord[P]](a, b P) bool {
	for i := 0; i < a.Dim(); i++ {
		if a.Axis(i) != b.Axis(i) {
			return a.Axis(i) < b.Axis(i)
		}
	}
	return false
}

// Node is one lattice point together with its presentation state.
type Node[P Coord[P]] struct {
	Coord    P             // identity of the point
	Pos      geometry.Vec2 // screen position, set by the Placement
	Selected bool          // transient selection flag
}

// Placement maps a lattice coordinate to a screen position.
type Placement[P Coord[P]] func(P) geometry.Vec2

// Lattice is a rectangular grid of Nodes. Coordinates are immutable once
// built; only selection flags change.
type Lattice[P Coord[P]] struct {
	extent  P
	strides []int
	nodes   []Node[P]
}
