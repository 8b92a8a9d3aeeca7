// SPDX-License-Identifier: MIT

package connection

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/cubiq/lattice"
)

// MarshalJSON encodes c as [[a...],[b...],0|1].
func (c Connection[P]) MarshalJSON() ([]byte, error) {
	dashed := 0
	if c.dashed {
		dashed = 1
	}
	return json.Marshal([]interface{}{lattice.Vector(c.a), lattice.Vector(c.b), dashed})
}

// UnmarshalJSON decodes a wire line. The endpoints must have the arity of P.
//
// Errors:
//   - ErrBadWire for anything that is not a two- or three-element line with
//     integer coordinates and a 0|1 flag.
//   - geometry.ErrDimensionMismatch (wrapped) for endpoints of the wrong arity.
func (c *Connection[P]) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("%w: %v", ErrBadWire, err)
	}
	if len(parts) != 2 && len(parts) != 3 {
		return fmt.Errorf("%w: %d elements", ErrBadWire, len(parts))
	}
	var ends [2]P
	for i := range ends {
		var axes []int
		if err := json.Unmarshal(parts[i], &axes); err != nil {
			return fmt.Errorf("%w: endpoint %d: %v", ErrBadWire, i, err)
		}
		p, err := lattice.FromVector[P](axes)
		if err != nil {
			return fmt.Errorf("endpoint %d: %w", i, err)
		}
		ends[i] = p
	}
	dashed := false
	if len(parts) == 3 {
		var flag int
		if err := json.Unmarshal(parts[2], &flag); err != nil || (flag != 0 && flag != 1) {
			return fmt.Errorf("%w: dashed flag %s", ErrBadWire, parts[2])
		}
		dashed = flag == 1
	}
	*c = New(ends[0], ends[1], dashed)
	return nil
}
