// SPDX-License-Identifier: MIT

package connection

import (
	"fmt"

	"github.com/katalvlaran/cubiq/geometry"
	"github.com/katalvlaran/cubiq/lattice"
)

// Connection is an immutable undirected segment between two lattice points.
// Compare connections with Equal or by Key; the struct itself remembers the
// order its endpoints were given in.
type Connection[P lattice.Coord[P]] struct {
	a, b   P
	dashed bool
}

// Key is the canonical identity of a Connection: Lo is never greater than Hi
// in lattice.Less order.
type Key[P lattice.Coord[P]] struct {
	Lo, Hi P
	Dashed bool
}

// New returns the connection a–b.
func New[P lattice.Coord[P]](a, b P, dashed bool) Connection[P] {
	return Connection[P]{a: a, b: b, dashed: dashed}
}

// Mark returns the solid degenerate connection p–p that marks a single point.
func Mark[P lattice.Coord[P]](p P) Connection[P] {
	return Connection[P]{a: p, b: p}
}

// A returns the first endpoint.
func (c Connection[P]) A() P { return c.a }

// B returns the second endpoint.
func (c Connection[P]) B() P { return c.b }

// Dashed reports whether c is a hidden (dashed) edge.
func (c Connection[P]) Dashed() bool { return c.dashed }

// IsPoint reports whether c is a marked single point.
func (c Connection[P]) IsPoint() bool { return c.a == c.b }

// Length returns the Euclidean lattice length of c.
func (c Connection[P]) Length() float64 {
	// both endpoints share P, so the arity always matches
	d, _ := geometry.Distance(lattice.Vector(c.a), lattice.Vector(c.b))
	return d
}

// Connects reports whether c joins p and q, in either order.
func (c Connection[P]) Connects(p, q P) bool {
	return (c.a == p && c.b == q) || (c.a == q && c.b == p)
}

// WithDashed returns a copy of c with the dashed flag set to dashed.
func (c Connection[P]) WithDashed(dashed bool) Connection[P] {
	c.dashed = dashed
	return c
}

// Toggled returns a copy of c with the dashed flag flipped.
func (c Connection[P]) Toggled() Connection[P] {
	return c.WithDashed(!c.dashed)
}

// Key returns the canonical identity of c.
func (c Connection[P]) Key() Key[P] {
	lo, hi := c.a, c.b
	if lattice.Less(hi, lo) {
		lo, hi = hi, lo
	}
	return Key[P]{Lo: lo, Hi: hi, Dashed: c.dashed}
}

// Equal reports whether c and o have the same endpoints, in any order, and the
// same dashed flag.
func (c Connection[P]) Equal(o Connection[P]) bool {
	return c.Key() == o.Key()
}

func (c Connection[P]) String() string {
	if c.dashed {
		return fmt.Sprintf("%s-%s dashed", c.a, c.b)
	}
	return fmt.Sprintf("%s-%s", c.a, c.b)
}

// Connection returns the connection described by k.
func (k Key[P]) Connection() Connection[P] {
	return New(k.Lo, k.Hi, k.Dashed)
}
