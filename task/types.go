// SPDX-License-Identifier: MIT

package task

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/lattice"
)

// Kind is the persisted task_type.
type Kind string

const (
	// SolidFromPlanes tasks show the three views; the user draws the solid.
	SolidFromPlanes Kind = "2D_to_3D"
	// PlanesFromSolid tasks show the solid; the user draws the three views.
	PlanesFromSolid Kind = "3D_to_2D"
	// Tutorial tasks introduce the controls.
	Tutorial Kind = "tutorial"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case SolidFromPlanes, PlanesFromSolid, Tutorial:
		return true
	}
	return false
}

// Drawing tells which lattices a task lets the user draw on.
type Drawing int

const (
	// DrawNothing marks read-only tasks; they count as solved.
	DrawNothing Drawing = iota
	// DrawSolid means the user draws on the 3D lattice.
	DrawSolid
	// DrawPlanes means the user draws on the three 2D planes.
	DrawPlanes
)

// ID is a "chapter.index" task identifier.
type ID struct {
	Chapter, Index int
}

// ParseID parses "chapter.index".
func ParseID(s string) (ID, error) {
	ch, idx, ok := strings.Cut(s, ".")
	if !ok {
		return ID{}, fmt.Errorf("%q: %w", s, ErrBadID)
	}
	c, err1 := strconv.Atoi(ch)
	i, err2 := strconv.Atoi(idx)
	if err1 != nil || err2 != nil || c < 0 || i < 0 {
		return ID{}, fmt.Errorf("%q: %w", s, ErrBadID)
	}
	return ID{Chapter: c, Index: i}, nil
}

func (id ID) String() string { return fmt.Sprintf("%d.%d", id.Chapter, id.Index) }

// Less orders ids numerically, chapter first ("1.9" before "1.10").
func (id ID) Less(o ID) bool {
	if id.Chapter != o.Chapter {
		return id.Chapter < o.Chapter
	}
	return id.Index < o.Index
}

// Plane names one of the three orthographic views.
type Plane int

const (
	Plan  Plane = iota // top view (půdorys)
	Front              // front view (nárys)
	Side               // side view (bokorys)
)

// AllPlanes lists the planes in their canonical order.
var AllPlanes = [...]Plane{Plan, Front, Side}

func (p Plane) String() string {
	switch p {
	case Plan:
		return "plan"
	case Front:
		return "front"
	case Side:
		return "side"
	}
	return fmt.Sprintf("plane(%d)", int(p))
}

// Planes holds one 2D connection set per view.
type Planes struct {
	Plan, Front, Side connection.Set[lattice.Point2]
}

// Get returns the set drawn on p.
func (ps *Planes) Get(p Plane) connection.Set[lattice.Point2] {
	return *ps.ref(p)
}

// Set replaces the set drawn on p.
func (ps *Planes) Set(p Plane, s connection.Set[lattice.Point2]) {
	*ps.ref(p) = s
}

func (ps *Planes) ref(p Plane) *connection.Set[lattice.Point2] {
	switch p {
	case Front:
		return &ps.Front
	case Side:
		return &ps.Side
	}
	return &ps.Plan
}

// Empty reports whether no plane holds a connection.
func (ps Planes) Empty() bool {
	return len(ps.Plan) == 0 && len(ps.Front) == 0 && len(ps.Side) == 0
}

// Task is one puzzle.
type Task struct {
	ID     ID
	Text   string
	Kind   Kind
	Planes Planes                           // target views
	Solids []connection.Set[lattice.Point3] // alternative target solids; any one solves the task
}

// Empty returns the template of a fresh task: a PlanesFromSolid task with one
// empty solid and no views.
func Empty(id ID) *Task {
	return &Task{
		ID:     id,
		Kind:   PlanesFromSolid,
		Solids: []connection.Set[lattice.Point3]{{}},
	}
}

// Drawing reports which lattices the user draws on for t. Tutorials draw on
// the solid when they carry a solid target and are read-only otherwise.
func (t *Task) Drawing() Drawing {
	switch t.Kind {
	case SolidFromPlanes:
		return DrawSolid
	case PlanesFromSolid:
		return DrawPlanes
	}
	for _, s := range t.Solids {
		if len(s) > 0 {
			return DrawSolid
		}
	}
	return DrawNothing
}

// AuthoredKind returns the kind a task written by an author is stored as.
// Every task of chapter 0 is a Tutorial; any other task keeps kind, which
// must then be SolidFromPlanes or PlanesFromSolid.
func AuthoredKind(id ID, kind Kind) (Kind, error) {
	if id.Chapter == 0 {
		return Tutorial, nil
	}
	if kind != SolidFromPlanes && kind != PlanesFromSolid {
		return "", fmt.Errorf("task %s: %q: %w", id, kind, ErrUnknownKind)
	}
	return kind, nil
}

// Compose builds the task an author drew: the three views plus a single
// target solid. The kind follows AuthoredKind.
func Compose(id ID, text string, kind Kind, planes Planes, solid connection.Set[lattice.Point3]) (*Task, error) {
	k, err := AuthoredKind(id, kind)
	if err != nil {
		return nil, err
	}
	if solid == nil {
		solid = connection.Set[lattice.Point3]{}
	}
	return &Task{
		ID:     id,
		Text:   text,
		Kind:   k,
		Planes: planes,
		Solids: []connection.Set[lattice.Point3]{solid},
	}, nil
}
