// Package interact turns pointer input into connection edits.
//
// A Controller owns the lattices a task lets the user draw on (the 3D solid,
// or the plan, front and side planes) together with the user's connection set
// on each. Every edit goes through package merge, so the sets are always
// normalized when the caller reads them.
//
// Gestures (Press values):
//
//   - Primary on a point:            select it; a second point draws a
//     connection from the selected one (dashed if ModDashed is held).
//   - Primary on the selected point: deselect it.
//   - Primary+ModMark on a point:    mark or unmark that single point.
//   - Primary twice off any point within the double-click window: delete the
//     connection nearest to the cursor.
//   - Secondary near a connection:   flip its dashed flag and re-normalize.
//
// NewEditor builds the authoring variant: it draws on the solid and the three
// planes at once, and Compose turns the drawing into a task.Task.
//
// While a point is selected, the lattice holding it is the active lattice and
// all other lattices ignore point presses, so a line can never be drawn across
// lattices. Selection is exclusive within a lattice.
//
// The controller is single-threaded by contract: callers feed presses from
// one event loop. Thresholds come from Options; nothing reads presentation
// globals.
package interact
