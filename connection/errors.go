// SPDX-License-Identifier: MIT

package connection

import "errors"

// ErrBadWire indicates a malformed wire triple.
var ErrBadWire = errors.New("connection: malformed wire line")
