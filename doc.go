// Package cubiq is the geometric core of an orthographic-projection puzzle:
// the user draws a solid on a 3×3×3 lattice from its three views, or the three
// views (plan, front, side) on 3×3 lattices from a solid, and the drawing is
// checked against stored solutions.
//
// What is in the box?
//
//	A small, allocation-light, pure-Go model of line drawings on lattices:
//		• Lattice points and grids: 2D and 3D coordinates, screen layouts
//		• Connections: undirected segments with a dashed (hidden edge) flag
//		• Merge engine: collinear merge, dashed/solid split, point absorption
//		• Verification: canonical set comparison against alternative targets
//		• Interaction: selection, marks, double-click delete, dashed toggle
//		• Task catalogs: JSON documents grouped into chapters
//
// Why a canonical form?
//
//   - Drawing order never matters. Two strokes (0,0)-(1,0) and (1,0)-(2,0)
//     are the same drawing as one stroke (0,0)-(2,0).
//   - Dashed is part of identity. A hidden edge drawn solid is a wrong answer.
//   - One engine for every arity. Merge code is generic over lattice.Coord.
//
// Packages:
//
//	geometry/    integer vectors, exact collinearity, screen distances
//	lattice/     Point2, Point3, lattice grids, square and oblique layouts
//	connection/  Connection, canonical Key, Set, wire codec
//	merge/       Overlaps, Segments, Normalize
//	verify/      Solved, Planes, Task
//	task/        Task, ID, Catalog
//	interact/    Controller, editor, Nearest, HitTestDelete, ToggleDashedNear
//	cmd/cubiq/   list, check, normalize, replay and author from the command line
//
// Quick example, a unit edge drawn in two strokes:
//
//	s := merge.Normalize(connection.Set[lattice.Point2]{
//		connection.New(lattice.P2(0, 0), lattice.P2(1, 0), false),
//		connection.New(lattice.P2(1, 0), lattice.P2(2, 0), false),
//	})
//	// s == [(0,0)-(2,0)]
//
//	go get github.com/katalvlaran/cubiq
package cubiq
