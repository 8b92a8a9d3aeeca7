// SPDX-License-Identifier: MIT

package geometry

import "errors"

// ErrDimensionMismatch indicates that vectors of different arity were mixed
// in a single computation (e.g. a 2D and a 3D lattice coordinate).
var ErrDimensionMismatch = errors.New("geometry: dimension mismatch")
