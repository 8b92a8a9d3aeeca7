// Package merge is the collinearity and merge engine of the connection model.
//
// It reduces a set of connections to its canonical, maximally merged form:
//
//   - Overlaps decides whether two connections describe the same stretch of
//     one line (a marked point lying on a segment, or two collinear segments
//     that share an endpoint and run the same way from it).
//   - Segments merges one pair and reports a Result: Separate (keep both),
//     Merged (one replacement), Split (the shorter segment plus the remainder
//     of the longer one) or Cancelled (remove both).
//   - Normalize applies Segments to all pairs, restarting the scan from the
//     beginning after every change, until no pair reduces further.
//
// Dashed conflicts:
//
//	When two overlapping segments disagree on the dashed flag, the shorter one
//	wins as drawn and the longer one is cut back to the part the shorter one
//	does not cover. Equal lengths cancel each other out. Only length decides;
//	the order in which the segments were drawn does not.
//
// All functions are pure: inputs are never modified. Everything is written
// once over lattice.Coord, so 2D planes and the 3D solid share one engine.
//
// Complexity:
//
//   - Overlaps, Segments: O(1) for fixed arity.
//   - Normalize: O(n²) per pass, at most O(n + total length) passes.
package merge
