// SPDX-License-Identifier: MIT

package interact

import (
	"time"

	"github.com/katalvlaran/cubiq/geometry"
)

// Button identifies the pointer button of a press.
type Button int

const (
	Primary Button = iota
	Secondary
)

// Modifiers is the modifier-key state sampled at press time.
type Modifiers uint8

const (
	// ModDashed draws the new connection dashed (Ctrl).
	ModDashed Modifiers = 1 << iota
	// ModMark turns a point press into mark/unmark (Shift).
	ModMark
)

// Press is one pointer button press.
type Press struct {
	Pos    geometry.Vec2
	Button Button
	Mods   Modifiers
	At     time.Time
}

// Outcome tells the caller what a press did.
type Outcome int

const (
	Ignored    Outcome = iota // nothing happened
	Selected                  // first point of a connection selected
	Deselected                // selected point released
	Connected                 // connection drawn and merged in
	Unchanged                 // identical connection already existed
	Marked                    // single point marked
	Unmarked                  // single point mark removed
	Toggled                   // dashed flag flipped
	Deleted                   // connection removed by double click
)

var outcomeNames = [...]string{
	Ignored:    "ignored",
	Selected:   "selected",
	Deselected: "deselected",
	Connected:  "connected",
	Unchanged:  "unchanged",
	Marked:     "marked",
	Unmarked:   "unmarked",
	Toggled:    "toggled",
	Deleted:    "deleted",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// Result is the outcome of one press and the lattice it acted on.
type Result struct {
	Outcome Outcome
	Surface string // empty for Ignored
}

// clicker detects double clicks by elapsed time only.
type clicker struct {
	window time.Duration
	last   time.Time
}

// double records a press at t and reports whether it completes a double
// click. A completed double click resets the detector.
func (c *clicker) double(t time.Time) bool {
	if !c.last.IsZero() && t.Sub(c.last) <= c.window {
		c.last = time.Time{}
		return true
	}
	c.last = t
	return false
}
