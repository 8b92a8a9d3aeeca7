// Package verify decides whether a user's drawing solves a task.
//
// Both sides are normalized with merge.Normalize before comparison, so the
// user may draw a target edge in any number of collinear strokes and in any
// direction. The dashed flag is part of a connection's identity: a hidden
// edge drawn solid (or the reverse) is a different answer.
//
//   - Solved:  one user set against alternative targets; any match solves.
//   - Planes:  all three views must match their targets independently.
//   - Task:    dispatches on the task's Drawing mode.
package verify
