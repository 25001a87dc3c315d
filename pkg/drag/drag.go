package drag

import (
	"maps"
	"math"

	"github.com/matzehuels/concentric/pkg/geom"
)

// DefaultClickThreshold is the pointer travel, in pixels, below which a
// press-release cycle counts as a click.
const DefaultClickThreshold = 5.0

// Constrain clamps off so that base translated by off stays inside t.
// When base is larger than t along an axis, the element is aligned with
// the territory's leading edge (left or top).
func Constrain(base geom.Rect, t geom.Bounds, off geom.Offset) geom.Offset {
	return geom.Offset{
		X: clampAxis(off.X, t.Left-base.Left(), t.Right-base.Right()),
		Y: clampAxis(off.Y, t.Top-base.Top(), t.Bottom-base.Bottom()),
	}
}

func clampAxis(v, lo, hi float64) float64 {
	switch {
	case hi < lo:
		return lo
	case math.IsNaN(v):
		return max(lo, min(0, hi))
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// Source identifies the kind of pointer producing an event.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

// String returns "mouse" or "touch".
func (s Source) String() string {
	if s == SourceTouch {
		return "touch"
	}
	return "mouse"
}

// ButtonPrimary is the main mouse button.
const ButtonPrimary = 0

// Input is one pointer event.
type Input struct {
	Source Source
	// Button is the mouse button that changed state. Ignored for touch.
	Button int
	// Touches is the number of active touch points. Ignored for mouse.
	Touches int
	Point   geom.Point
}

// Mouse returns a primary-button mouse event at p.
func Mouse(p geom.Point) Input {
	return Input{Source: SourceMouse, Button: ButtonPrimary, Point: p}
}

// Touch returns a single-finger touch event at p.
func Touch(p geom.Point) Input {
	return Input{Source: SourceTouch, Touches: 1, Point: p}
}

func (in Input) startsDrag() bool {
	if in.Source == SourceTouch {
		return in.Touches == 1
	}
	return in.Button == ButtonPrimary
}

// State is the tracker's position in the drag state machine.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// LimitFunc reports an element's base rectangle and territory. ok is false
// when the element or its territory is no longer known, in which case the
// drag proceeds unconstrained.
type LimitFunc func(id string) (base geom.Rect, territory geom.Bounds, ok bool)

// Release describes the end of a session.
type Release struct {
	ID     string
	Offset geom.Offset
	// Click is true when the pointer never left the click threshold.
	Click bool
}

type session struct {
	id          string
	source      Source
	start       geom.Point
	startOffset geom.Offset
	engaged     bool
}

// Tracker owns the per-element drag offsets and the active session.
// It is not safe for concurrent use.
type Tracker struct {
	threshold float64
	limits    LimitFunc
	offsets   map[string]geom.Offset
	active    *session
}

// NewTracker creates a tracker. A negative threshold is treated as zero;
// limits may be nil, which leaves every drag unconstrained.
func NewTracker(threshold float64, limits LimitFunc) *Tracker {
	if !(threshold > 0) {
		threshold = 0
	}
	return &Tracker{
		threshold: threshold,
		limits:    limits,
		offsets:   make(map[string]geom.Offset),
	}
}

// State reports whether a drag session is active.
func (t *Tracker) State() State {
	if t.active != nil {
		return Dragging
	}
	return Idle
}

// Active returns the id of the element being dragged.
func (t *Tracker) Active() (string, bool) {
	if t.active == nil {
		return "", false
	}
	return t.active.id, true
}

// Engaged reports whether the active session has left the click threshold.
func (t *Tracker) Engaged() bool {
	return t.active != nil && t.active.engaged
}

// Begin starts a session on element id. It reports false, leaving state
// unchanged, when a session is already active or the input is not a
// primary-button press or single-finger touch.
func (t *Tracker) Begin(id string, in Input) bool {
	if t.active != nil || !in.startsDrag() {
		return false
	}
	t.active = &session{
		id:          id,
		source:      in.Source,
		start:       in.Point,
		startOffset: t.offsets[id],
	}
	return true
}

// Move updates the active session with a new pointer position and returns
// the element's resulting offset. It reports false when no session is
// active or the input comes from a different pointer source.
func (t *Tracker) Move(in Input) (geom.Offset, bool) {
	s := t.active
	if s == nil || in.Source != s.source {
		return geom.Offset{}, false
	}
	if in.Source == SourceTouch && in.Touches > 1 {
		return t.offsets[s.id], false
	}

	delta := in.Point.Sub(s.start)
	if !s.engaged {
		if delta.Len() <= t.threshold {
			return s.startOffset, true
		}
		s.engaged = true
	}

	off := s.startOffset.Add(delta)
	if t.limits != nil {
		if base, bounds, ok := t.limits(s.id); ok {
			off = Constrain(base, bounds, off)
		}
	}
	t.offsets[s.id] = off
	return off, true
}

// End finishes the active session. The offset reached during the drag
// persists. When the element has disappeared since the drag began its
// offset is discarded.
func (t *Tracker) End() (Release, bool) {
	s := t.active
	if s == nil {
		return Release{}, false
	}
	t.active = nil

	if t.limits != nil {
		if _, _, ok := t.limits(s.id); !ok {
			delete(t.offsets, s.id)
		}
	}
	return Release{ID: s.id, Offset: t.offsets[s.id], Click: !s.engaged}, true
}

// Cancel abandons the active session and restores the offset captured when
// it began. A cancelled session is never reported as a click.
func (t *Tracker) Cancel() (string, bool) {
	s := t.active
	if s == nil {
		return "", false
	}
	t.active = nil
	if s.startOffset.IsZero() {
		delete(t.offsets, s.id)
	} else {
		t.offsets[s.id] = s.startOffset
	}
	return s.id, true
}

// Offset returns the element's current offset, zero when none is set.
func (t *Tracker) Offset(id string) geom.Offset {
	return t.offsets[id]
}

// Offsets returns a copy of all non-zero offsets.
func (t *Tracker) Offsets() map[string]geom.Offset {
	out := make(map[string]geom.Offset, len(t.offsets))
	for id, off := range t.offsets {
		if !off.IsZero() {
			out[id] = off
		}
	}
	return out
}

// SetOffsets replaces all offsets, for example when restoring a scene.
// It does not affect an active session.
func (t *Tracker) SetOffsets(offsets map[string]geom.Offset) {
	t.offsets = maps.Clone(offsets)
	if t.offsets == nil {
		t.offsets = make(map[string]geom.Offset)
	}
}

// Remove drops the offset of an element that is no longer mounted.
func (t *Tracker) Remove(id string) {
	delete(t.offsets, id)
}

// Reset clears every offset and abandons any active session.
func (t *Tracker) Reset() {
	t.active = nil
	clear(t.offsets)
}
