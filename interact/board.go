// SPDX-License-Identifier: MIT

package interact

import (
	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/geometry"
	"github.com/katalvlaran/cubiq/lattice"
	"github.com/katalvlaran/cubiq/merge"
)

// surface is the arity-free view of a board the controller dispatches on.
type surface interface {
	name() string
	// press handles a primary press; hit is false when no point is near pos.
	press(pos geometry.Vec2, radius float64, mods Modifiers) (out Outcome, hit bool)
	// nearest reports the index and distance of the connection closest to pos.
	nearest(pos geometry.Vec2, tol float64) (int, float64, bool)
	remove(i int) string
	toggle(i int) string
	deselect()
	clear()
	size() int
}

// board is one lattice with the user's normalized connections on it.
type board[P lattice.Coord[P]] struct {
	label string
	grid  *lattice.Lattice[P]
	conns connection.Set[P]
}

func newBoard[P lattice.Coord[P]](label string, grid *lattice.Lattice[P]) *board[P] {
	return &board[P]{label: label, grid: grid}
}

func (b *board[P]) name() string { return b.label }
func (b *board[P]) size() int    { return len(b.conns) }
func (b *board[P]) deselect()    { b.grid.ResetSelection() }

func (b *board[P]) clear() {
	b.conns = nil
	b.grid.ResetSelection()
}

func (b *board[P]) press(pos geometry.Vec2, radius float64, mods Modifiers) (Outcome, bool) {
	p, ok := b.grid.PointNear(pos, radius)
	if !ok {
		return Ignored, false
	}
	if mods&ModMark != 0 {
		b.grid.ResetSelection()
		if i := b.conns.IndexConnecting(p, p); i >= 0 {
			b.conns = b.conns.Without(i)
			return Unmarked, true
		}
		b.conns = merge.Add(b.conns, connection.Mark(p))
		return Marked, true
	}
	if b.grid.IsSelected(p) {
		b.grid.ResetSelection()
		return Deselected, true
	}
	if sel := b.grid.Selected(); len(sel) > 0 {
		b.grid.ResetSelection()
		return b.connect(sel[0], p, mods&ModDashed != 0), true
	}
	// p comes from the lattice itself, so Select cannot fail.
	_ = b.grid.Select(p)
	return Selected, true
}

// connect draws from-to. An identical connection is left alone; one between
// the same points with the other dashed flag is replaced.
func (b *board[P]) connect(from, to P, dashed bool) Outcome {
	if i := b.conns.IndexConnecting(from, to); i >= 0 {
		if b.conns[i].Dashed() == dashed {
			return Unchanged
		}
		b.conns = b.conns.Without(i)
	}
	b.conns = merge.Add(b.conns, connection.New(from, to, dashed))
	return Connected
}

func (b *board[P]) nearest(pos geometry.Vec2, tol float64) (int, float64, bool) {
	return Nearest(b.conns, b.grid.Locate, pos, tol)
}

func (b *board[P]) remove(i int) string {
	c := b.conns[i]
	b.conns = b.conns.Without(i)
	return c.String()
}

func (b *board[P]) toggle(i int) string {
	next := b.conns.Clone()
	next[i] = next[i].Toggled()
	b.conns = merge.Normalize(next)
	return next[i].String()
}
