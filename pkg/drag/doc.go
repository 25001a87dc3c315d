// Package drag constrains free-form element dragging to each element's
// territory.
//
// # Constraint
//
// [Constrain] is a pure function. Given an element's base rectangle (its
// position before any offset), its territory and a candidate offset, it
// returns the offset that keeps the translated rectangle inside the
// territory. Each axis is clamped analytically: an edge pushed past the
// territory is aligned exactly with it. In-bounds offsets are returned
// unchanged, so constraining is idempotent.
//
// # Sessions
//
// A [Tracker] runs the idle → dragging → idle state machine for one
// pointer. A session starts on a primary mouse button press or a
// single-finger touch and records the pointer position and the element's
// offset at that moment. Every move recomputes the offset from scratch as
// start offset plus pointer delta, then constrains it, so no error
// accumulates across events.
//
// Offsets are sticky: they persist after release until [Tracker.Reset].
// A press whose pointer never travels farther than the click threshold is
// reported as a click and leaves the offset untouched. A cancelled touch
// restores the offset captured at drag start.
package drag
