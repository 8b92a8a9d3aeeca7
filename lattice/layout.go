// SPDX-License-Identifier: MIT

package lattice

import (
	"math"

	"github.com/katalvlaran/cubiq/geometry"
)

// Square places a 2D lattice as an axis-aligned grid: col grows to the right
// and row grows downwards, spacing screen units apart, starting at origin.
func Square(origin geometry.Vec2, spacing float64) Placement[Point2] {
	return func(p Point2) geometry.Vec2 {
		return geometry.Vec2{
			X: origin.X + float64(p.Col())*spacing,
			Y: origin.Y + float64(p.Row())*spacing,
		}
	}
}

// ObliqueShift is the screen offset between consecutive layers of the
// cavalier-style oblique projection: half the spacing, receding at 45°.
func ObliqueShift(spacing float64) float64 {
	return spacing / math.Sqrt2 / 2
}

// Oblique places a 3D lattice with an oblique parallel projection. Each layer
// is a Square grid shifted right and up by ObliqueShift(spacing).
func Oblique(origin geometry.Vec2, spacing float64) Placement[Point3] {
	shift := ObliqueShift(spacing)
	return func(p Point3) geometry.Vec2 {
		lay := float64(p.Layer())
		return geometry.Vec2{
			X: origin.X + shift*lay + float64(p.Col())*spacing,
			Y: origin.Y - shift*lay + float64(p.Row())*spacing,
		}
	}
}

// PlaneCorners holds the upper-left corners of the three projection planes.
type PlaneCorners struct {
	Plan, Front, Side geometry.Vec2
}

// PlaneOrigins arranges the three 3×3 planes around centre: front view
// top-right, side view top-left and plan below the front view.
func PlaneOrigins(centre geometry.Vec2, spacing float64) PlaneCorners {
	return PlaneCorners{
		Plan:  geometry.Vec2{X: centre.X + 0.5*spacing, Y: centre.Y + 0.5*spacing},
		Front: geometry.Vec2{X: centre.X + 0.5*spacing, Y: centre.Y - 3.5*spacing},
		Side:  geometry.Vec2{X: centre.X - 2.5*spacing, Y: centre.Y - 3.5*spacing},
	}
}

// EditorSolidOrigin places the 3D lattice of the task editor in the quadrant
// PlaneOrigins leaves free, below the side view and left of the plan.
func EditorSolidOrigin(centre geometry.Vec2, spacing float64) geometry.Vec2 {
	return geometry.Vec2{X: centre.X - 3.5*spacing, Y: centre.Y + 1.5*spacing}
}

// NewPlane builds a Size×Size projection plane laid out by Square.
func NewPlane(origin geometry.Vec2, spacing float64) (*Lattice[Point2], error) {
	return New(P2(Size, Size), Square(origin, spacing))
}

// NewSolid builds a Size×Size×Size lattice laid out by Oblique.
func NewSolid(origin geometry.Vec2, spacing float64) (*Lattice[Point3], error) {
	return New(P3(Size, Size, Size), Oblique(origin, spacing))
}
