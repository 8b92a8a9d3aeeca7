// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"
)

// Vec is an integer coordinate tuple on a lattice of any arity.
type Vec []int

// Vec2 is a position on the (continuous) screen plane.
type Vec2 struct {
	X, Y float64
}

// Sub returns p - q.
func (p Vec2) Sub(q Vec2) Vec2 { return Vec2{X: p.X - q.X, Y: p.Y - q.Y} }

// Len returns the Euclidean length of p.
func (p Vec2) Len() float64 { return math.Hypot(p.X, p.Y) }

// sameDim verifies that every vector has the arity of the first one.
func sameDim(vs ...Vec) error {
	if len(vs) == 0 {
		return nil
	}
	d := len(vs[0])
	for i, v := range vs[1:] {
		if len(v) != d {
			return fmt.Errorf("vector %d has %d axes, want %d: %w", i+1, len(v), d, ErrDimensionMismatch)
		}
	}
	return nil
}

// Distance returns the Euclidean distance between a and b.
//
// Errors:
//   - ErrDimensionMismatch if len(a) != len(b).
//
// Complexity: O(d).
func Distance(a, b Vec) (float64, error) {
	if err := sameDim(a, b); err != nil {
		return 0, err
	}
	var sum float64
	for i := range a {
		d := float64(b[i] - a[i])
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// Collinear reports whether all points lie on one straight line.
// Fewer than three points are trivially collinear.
//
// Every direction vector p-points[0] must be a scalar multiple of one
// reference direction, the first nonzero one. This differs from testing
// against points[1]-points[0] alone: a repeated first point does not make
// the points non-collinear, and the answer does not depend on argument
// order. A zero vector is a multiple of anything; a zero
// component in the reference forces the same component to be zero in every
// other vector. The test is done with integer cross products, so it is exact
// and never divides.
//
// Errors:
//   - ErrDimensionMismatch if the points do not share one arity.
//
// Complexity: O(n·d²).
func Collinear(points ...Vec) (bool, error) {
	if err := sameDim(points...); err != nil {
		return false, err
	}
	if len(points) < 3 {
		return true, nil
	}
	base := points[0]
	var ref Vec
	for _, p := range points[1:] {
		v := diff(base, p)
		if ref == nil {
			if !isZero(v) {
				ref = v
			}
			continue
		}
		if !parallel(ref, v) {
			return false, nil
		}
	}
	return true, nil
}

// diff returns b - a.
func diff(a, b Vec) Vec {
	out := make(Vec, len(a))
	for i := range a {
		out[i] = b[i] - a[i]
	}
	return out
}

func isZero(v Vec) bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}

// parallel reports whether v is a scalar multiple of the non-zero ref:
// every 2×2 minor of the pair must vanish.
func parallel(ref, v Vec) bool {
	for i := range ref {
		for j := i + 1; j < len(ref); j++ {
			if ref[i]*v[j] != ref[j]*v[i] {
				return false
			}
		}
	}
	return true
}

// SegmentDistance returns the distance from q to the closed segment a–b.
// The projection of q onto the line is clamped to the endpoints; when a == b
// the result is the plain point-to-point distance.
//
// Complexity: O(1).
func SegmentDistance(q, a, b Vec2) float64 {
	ab := b.Sub(a)
	aq := q.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		// coincident endpoints
		return aq.Len()
	}
	t := (aq.X*ab.X + aq.Y*ab.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	nearest := Vec2{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}
	return q.Sub(nearest).Len()
}
