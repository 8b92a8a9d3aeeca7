// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrEmptyLattice indicates a lattice extent with a non-positive axis.
	ErrEmptyLattice = errors.New("lattice: every axis must have at least one point")
	// ErrOutOfBounds indicates a coordinate outside the lattice extent.
	ErrOutOfBounds = errors.New("lattice: coordinate out of bounds")
)
