package concentric

import (
	"github.com/matzehuels/concentric/pkg/drag"
	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/observability"
)

// PointerDown starts dragging id. It reports false when a drag is already
// active, the element is unknown, or the input is not a primary press.
func (e *Engine) PointerDown(id string, in drag.Input) bool {
	if _, ok := e.reg.Get(id); !ok {
		return false
	}
	if !e.tracker.Begin(id, in) {
		return false
	}
	observability.Drag().OnDragStart(e.ctx, id, in.Source.String())
	return true
}

// PointerMove updates the active drag and returns the element's new
// offset, constrained to its territory.
func (e *Engine) PointerMove(in drag.Input) (geom.Offset, bool) {
	before, _ := e.tracker.Active()
	prev := e.tracker.Offset(before)
	off, ok := e.tracker.Move(in)
	if ok && off != prev {
		e.publishOffsets()
	}
	return off, ok
}

// PointerUp ends the active drag. The returned release reports whether the
// interaction was a click.
func (e *Engine) PointerUp() (drag.Release, bool) {
	rel, ok := e.tracker.End()
	if !ok {
		return rel, false
	}
	observability.Drag().OnDragEnd(e.ctx, rel.ID, rel.Offset.X, rel.Offset.Y, rel.Click)
	e.publishOffsets()
	return rel, true
}

// PointerCancel abandons the active drag, restoring the offset the element
// had when it began.
func (e *Engine) PointerCancel() bool {
	id, ok := e.tracker.Cancel()
	if !ok {
		return false
	}
	observability.Drag().OnDragCancel(e.ctx, id)
	e.publishOffsets()
	return true
}

// Dragging returns the id of the element being dragged.
func (e *Engine) Dragging() (string, bool) { return e.tracker.Active() }

// Offset returns id's drag offset.
func (e *Engine) Offset(id string) geom.Offset { return e.tracker.Offset(id) }

// SetOffsets replaces all drag offsets.
func (e *Engine) SetOffsets(offsets map[string]geom.Offset) {
	e.tracker.SetOffsets(offsets)
	e.publishOffsets()
}

// Reset clears every drag offset and aborts any drag, returning the layout
// to its default positions.
func (e *Engine) Reset() {
	e.PointerCancel()
	e.tracker.Reset()
	e.publishOffsets()
	e.RequestRecompute()
	e.logger.Debug("reset offsets")
}

func (e *Engine) publishOffsets() {
	e.version++
	next := e.snap.Load().withOffsets(e.tracker.Offsets())
	next.Version = e.version
	e.snap.Store(next)
}

// limits resolves drag constraints from the published territories, which
// are always computed from base bounds.
func (e *Engine) limits(id string) (geom.Rect, geom.Bounds, bool) {
	if _, ok := e.reg.Get(id); !ok {
		return geom.Rect{}, geom.Bounds{}, false
	}
	t, ok := e.snap.Load().Territory(id)
	if !ok {
		return geom.Rect{}, geom.Bounds{}, false
	}
	return t.ElementBounds, t.TerritoryBounds, true
}
