// SPDX-License-Identifier: MIT

package interact

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/geometry"
	"github.com/katalvlaran/cubiq/lattice"
	"github.com/katalvlaran/cubiq/merge"
	"github.com/katalvlaran/cubiq/task"
	"github.com/katalvlaran/cubiq/verify"
)

// SurfaceSolid names the 3D lattice in Result. Planes are named by
// task.Plane.String.
const SurfaceSolid = "solid"

// Controller applies presses to the lattices of one task.
type Controller struct {
	cfg      config
	clicks   clicker
	solid    *board[lattice.Point3]
	planes   map[task.Plane]*board[lattice.Point2]
	surfaces []surface // press order
	active   int       // index into surfaces, -1 when unlocked
}

func newController(opts []Option) *Controller {
	cfg := newConfig(opts...)
	return &Controller{
		cfg:    cfg,
		clicks: clicker{window: cfg.doubleClick},
		planes: make(map[task.Plane]*board[lattice.Point2]),
		active: -1,
	}
}

// NewSolid returns a controller drawing on a single 3D lattice.
func NewSolid(grid *lattice.Lattice[lattice.Point3], opts ...Option) *Controller {
	c := newController(opts)
	c.solid = newBoard(SurfaceSolid, grid)
	c.surfaces = []surface{c.solid}
	return c
}

// NewPlanes returns a controller drawing on the three projection planes.
func NewPlanes(plan, front, side *lattice.Lattice[lattice.Point2], opts ...Option) *Controller {
	c := newController(opts)
	for p, grid := range map[task.Plane]*lattice.Lattice[lattice.Point2]{
		task.Plan: plan, task.Front: front, task.Side: side,
	} {
		c.planes[p] = newBoard(p.String(), grid)
	}
	for _, p := range task.AllPlanes {
		c.surfaces = append(c.surfaces, c.planes[p])
	}
	return c
}

// NewEditor returns a controller for authoring a task: it draws on the solid
// and on all three planes. The active-lattice lock still applies, and a
// double click deletes the nearest connection on any of the four lattices.
func NewEditor(solid *lattice.Lattice[lattice.Point3], plan, front, side *lattice.Lattice[lattice.Point2], opts ...Option) *Controller {
	c := NewPlanes(plan, front, side, opts...)
	c.solid = newBoard(SurfaceSolid, solid)
	c.surfaces = append([]surface{c.solid}, c.surfaces...)
	return c
}

// NewReadOnly returns a controller that ignores every press.
func NewReadOnly(opts ...Option) *Controller {
	return newController(opts)
}

// ForTask lays out the lattices t draws on around centre and returns a
// controller for them.
func ForTask(t *task.Task, centre geometry.Vec2, spacing float64, opts ...Option) (*Controller, error) {
	switch t.Drawing() {
	case task.DrawSolid:
		grid, err := lattice.NewSolid(centre, spacing)
		if err != nil {
			return nil, err
		}
		return NewSolid(grid, opts...), nil
	case task.DrawPlanes:
		plan, front, side, err := layPlanes(centre, spacing)
		if err != nil {
			return nil, err
		}
		return NewPlanes(plan, front, side, opts...), nil
	}
	return NewReadOnly(opts...), nil
}

// ForEditor lays out an editor around centre: the planes as ForTask places
// them and the solid at lattice.EditorSolidOrigin.
func ForEditor(centre geometry.Vec2, spacing float64, opts ...Option) (*Controller, error) {
	solid, err := lattice.NewSolid(lattice.EditorSolidOrigin(centre, spacing), spacing)
	if err != nil {
		return nil, err
	}
	plan, front, side, err := layPlanes(centre, spacing)
	if err != nil {
		return nil, err
	}
	return NewEditor(solid, plan, front, side, opts...), nil
}

// layPlanes builds the three planes at lattice.PlaneOrigins.
func layPlanes(centre geometry.Vec2, spacing float64) (plan, front, side *lattice.Lattice[lattice.Point2], err error) {
	at := lattice.PlaneOrigins(centre, spacing)
	if plan, err = lattice.NewPlane(at.Plan, spacing); err != nil {
		return nil, nil, nil, err
	}
	if front, err = lattice.NewPlane(at.Front, spacing); err != nil {
		return nil, nil, nil, err
	}
	if side, err = lattice.NewPlane(at.Side, spacing); err != nil {
		return nil, nil, nil, err
	}
	return plan, front, side, nil
}

// HandlePress applies one press.
func (c *Controller) HandlePress(ev Press) Result {
	var res Result
	switch ev.Button {
	case Primary:
		res = c.primary(ev)
	case Secondary:
		res = c.secondary(ev)
	}
	c.cfg.log.Debug("press",
		zap.Float64("x", ev.Pos.X),
		zap.Float64("y", ev.Pos.Y),
		zap.Bool("dashed", ev.Mods&ModDashed != 0),
		zap.String("surface", res.Surface),
		zap.Stringer("outcome", res.Outcome),
	)
	return res
}

func (c *Controller) primary(ev Press) Result {
	for i, s := range c.surfaces {
		if c.active >= 0 && c.active != i {
			continue
		}
		out, hit := s.press(ev.Pos, c.cfg.hoverRadius, ev.Mods)
		if !hit {
			continue
		}
		if out == Selected {
			c.active = i
		} else {
			c.active = -1
		}
		return Result{Outcome: out, Surface: s.name()}
	}

	c.Deselect()
	if !c.clicks.double(ev.At) {
		return Result{Outcome: Ignored}
	}
	s, i, ok := c.nearest(ev.Pos)
	if !ok {
		return Result{Outcome: Ignored}
	}
	c.cfg.log.Debug("delete", zap.String("surface", s.name()), zap.String("conn", s.remove(i)))
	return Result{Outcome: Deleted, Surface: s.name()}
}

func (c *Controller) secondary(ev Press) Result {
	s, i, ok := c.nearest(ev.Pos)
	if !ok {
		return Result{Outcome: Ignored}
	}
	c.cfg.log.Debug("toggle", zap.String("surface", s.name()), zap.String("conn", s.toggle(i)))
	return Result{Outcome: Toggled, Surface: s.name()}
}

// nearest finds the single connection closest to pos over all surfaces.
func (c *Controller) nearest(pos geometry.Vec2) (surface, int, bool) {
	var (
		best    surface
		bestIdx int
	)
	bestDist := c.cfg.tolerance
	for _, s := range c.surfaces {
		if i, d, ok := s.nearest(pos, bestDist); ok {
			best, bestIdx, bestDist = s, i, d
		}
	}
	return best, bestIdx, best != nil
}

// Deselect clears all selections and releases the active lattice.
func (c *Controller) Deselect() {
	for _, s := range c.surfaces {
		s.deselect()
	}
	c.active = -1
}

// Clear removes every connection from every lattice.
func (c *Controller) Clear() {
	for _, s := range c.surfaces {
		s.clear()
	}
	c.active = -1
	c.cfg.log.Debug("clear")
}

// Active names the lattice holding the selected point, or "" when unlocked.
func (c *Controller) Active() string {
	if c.active < 0 {
		return ""
	}
	return c.surfaces[c.active].name()
}

// Len reports the total number of connections drawn.
func (c *Controller) Len() int {
	n := 0
	for _, s := range c.surfaces {
		n += s.size()
	}
	return n
}

// Solid returns a copy of the connections drawn on the 3D lattice.
func (c *Controller) Solid() connection.Set[lattice.Point3] {
	if c.solid == nil {
		return nil
	}
	return c.solid.conns.Clone()
}

// Planes returns copies of the connections drawn on the projection planes.
func (c *Controller) Planes() task.Planes {
	var ps task.Planes
	for p, b := range c.planes {
		ps.Set(p, b.conns.Clone())
	}
	return ps
}

// Attempt snapshots everything drawn so far.
func (c *Controller) Attempt() verify.Attempt {
	return verify.Attempt{Solid: c.Solid(), Planes: c.Planes()}
}

// Solved reports whether the current drawing solves t.
func (c *Controller) Solved(t *task.Task) bool {
	return verify.Task(t, c.Attempt())
}

// Load replaces the drawing with the targets of t, normalized: its first
// solid and its three views. Lattices the controller does not draw on are
// left out.
func (c *Controller) Load(t *task.Task) {
	c.Deselect()
	if c.solid != nil {
		c.solid.conns = nil
		if len(t.Solids) > 0 {
			c.solid.conns = merge.Normalize(t.Solids[0])
		}
	}
	for p, b := range c.planes {
		b.conns = merge.Normalize(t.Planes.Get(p))
	}
	c.cfg.log.Debug("load", zap.Stringer("task", t.ID), zap.Int("conns", c.Len()))
}

// Compose turns the current drawing into a task with the given id, text and
// kind, following task.AuthoredKind.
func (c *Controller) Compose(id task.ID, text string, kind task.Kind) (*task.Task, error) {
	return task.Compose(id, text, kind, c.Planes(), c.Solid())
}
