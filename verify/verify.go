// SPDX-License-Identifier: MIT

package verify

import (
	"github.com/katalvlaran/cubiq/connection"
	"github.com/katalvlaran/cubiq/lattice"
	"github.com/katalvlaran/cubiq/merge"
	"github.com/katalvlaran/cubiq/task"
)

// Attempt is what the user has drawn so far.
type Attempt struct {
	Solid  connection.Set[lattice.Point3]
	Planes task.Planes
}

// Solved reports whether the normalized user set equals the normalized form
// of at least one target. An empty target list is never solved.
//
// Complexity: O(k·n²) for k targets of about n connections.
func Solved[P lattice.Coord[P]](user connection.Set[P], targets []connection.Set[P]) bool {
	got := merge.Normalize(user)
	for _, target := range targets {
		if got.Equal(merge.Normalize(target)) {
			return true
		}
	}
	return false
}

// Planes reports whether every view of user equals the same view of target.
func Planes(user, target task.Planes) bool {
	for _, p := range task.AllPlanes {
		if !Solved(user.Get(p), []connection.Set[lattice.Point2]{target.Get(p)}) {
			return false
		}
	}
	return true
}

// Task reports whether a solves t. Read-only tasks are always solved.
func Task(t *task.Task, a Attempt) bool {
	switch t.Drawing() {
	case task.DrawSolid:
		return Solved(a.Solid, t.Solids)
	case task.DrawPlanes:
		return Planes(a.Planes, t.Planes)
	}
	return true
}
