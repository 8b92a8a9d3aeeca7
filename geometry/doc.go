// Package geometry provides the small set of pure geometric primitives the
// connection model is built on:
//
//   - Distance: Euclidean distance between integer lattice vectors of any arity.
//   - Collinear: exact integer collinearity test for three or more vectors.
//   - SegmentDistance: clamped point-to-segment distance on the screen plane,
//     used by hit testing.
//
// All functions are deterministic and allocation-light. Integer vectors of
// different arity are a programming error and are reported with
// ErrDimensionMismatch rather than silently truncated.
//
// Complexity:
//
//   - Distance:        O(d)
//   - Collinear:       O(n·d²) for n vectors of arity d (d ≤ 3 in practice)
//   - SegmentDistance: O(1)
package geometry
