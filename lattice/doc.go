// Package lattice models the fixed integer grids the puzzle is drawn on.
//
// What:
//
//   - Point2 (col,row) and Point3 (col,row,layer) coordinate values, both
//     satisfying the Coord[P] constraint so that the merge engine is written
//     once over any arity.
//   - Lattice[P] holds one Node per coordinate, decorated with a screen
//     position and a transient selection flag.
//   - Square and Oblique placements compute screen positions for the 2D
//     projection planes and the 3D solid.
//
// Identity:
//
//   - A lattice point is its coordinate tuple. Screen positions and selection
//     state never take part in equality; Point2/Point3 are comparable arrays
//     and may be used directly as map keys.
//
// Complexity:
//
//   - New:       O(N) for N = product of extents.
//   - Index:     O(d).
//   - PointNear: O(N).
//
// Errors:
//
//   - ErrEmptyLattice: some axis extent is < 1.
//   - ErrOutOfBounds:  a coordinate lies outside the lattice.
package lattice
