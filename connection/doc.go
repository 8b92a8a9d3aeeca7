// Package connection defines the undirected segment value the puzzle is built
// from, and sets of such segments.
//
// A Connection joins two lattice points of the same arity and carries a dashed
// flag (hidden edge). A Connection whose endpoints coincide is a marked point,
// a first-class value distinct from "no connection".
//
// Identity:
//
//	Key{Lo, Hi, Dashed}: the unordered endpoint pair plus the dashed flag.
//	Connection(a,b) and Connection(b,a) have the same Key and are Equal.
//
// Wire format:
//
//	[[a_coords...], [b_coords...], dashed]   dashed ∈ {0, 1}
//
// Connection and Set implement json.Marshaler/json.Unmarshaler with exactly
// this triple per connection. Decoding also accepts the two-element form
// (dashed omitted, meaning solid); encoding always writes three elements and
// keeps the endpoint order it was given.
package connection
