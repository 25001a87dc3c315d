package concentric

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/concentric/pkg/drag"
	"github.com/matzehuels/concentric/pkg/frame"
	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/observability"
	"github.com/matzehuels/concentric/pkg/registry"
	"github.com/matzehuels/concentric/pkg/rings"
	"github.com/matzehuels/concentric/pkg/territory"
)

const recomputeKey = "recompute"

// Engine owns the layout state of one page.
type Engine struct {
	ctx    context.Context
	opts   Options
	host   Host
	logger *log.Logger

	reg     *registry.Registry
	tracker *drag.Tracker
	sched   *frame.Scheduler
	settles map[string]*frame.Group

	// measure is set when element rectangles must be re-read from their
	// measurers on the next recompute.
	measure         bool
	lastLayoutWidth float64
	version         uint64

	// ran and lastFrame record the frame of the most recent recompute.
	ran       bool
	lastFrame uint64

	snap atomic.Pointer[Snapshot]
}

// New creates an engine reading window metrics from host. ctx is passed to
// observability hooks. Negative or NaN distances behave like zero; callers
// that need an error should call Options.Validate first.
func New(ctx context.Context, host Host, opts Options) *Engine {
	opts.SetDefaults()
	if host == nil {
		host = StaticHost{}
	}
	e := &Engine{
		ctx:     ctx,
		opts:    opts,
		host:    host,
		logger:  opts.Logger,
		reg:     registry.New(),
		sched:   frame.New(),
		settles: make(map[string]*frame.Group),
	}
	e.tracker = drag.NewTracker(opts.ClickThreshold, e.limits)
	e.snap.Store(&Snapshot{})
	return e
}

// Options returns the engine's effective options.
func (e *Engine) Options() Options { return e.opts }

// Snapshot returns the most recently published layout. It is safe to call
// from any goroutine.
func (e *Engine) Snapshot() *Snapshot { return e.snap.Load() }

// Element returns the current registry entry for id.
func (e *Engine) Element(id string) (registry.Element, bool) { return e.reg.Get(id) }

// Len returns the number of registered elements.
func (e *Engine) Len() int { return e.reg.Len() }

// =============================================================================
// Registry operations
// =============================================================================

// Register adds or replaces an element. Nav elements are pinned to the
// viewport unless overridden with registry.WithPinned. Registration
// without a measurer is a no-op and reports false.
func (e *Engine) Register(id string, category registry.Category, m registry.Measurer, opts ...registry.Option) bool {
	opts = append([]registry.Option{registry.WithPinned(category == registry.CategoryNav)}, opts...)
	if !e.reg.Register(id, category, m, opts...) {
		return false
	}
	e.logger.Debug("registered element", "id", id, "category", category)
	e.RequestRecompute()
	return true
}

// Unregister removes an element. An active drag on it continues
// unconstrained until released, after which its offset is dropped.
func (e *Engine) Unregister(id string) bool {
	if !e.reg.Unregister(id) {
		return false
	}
	if g, ok := e.settles[id]; ok {
		g.Cancel()
		delete(e.settles, id)
	}
	if active, ok := e.tracker.Active(); !ok || active != id {
		e.tracker.Remove(id)
	}
	e.logger.Debug("unregistered element", "id", id)
	e.requestLayout()
	return true
}

// UpdateBounds replaces one element's base rectangle and requests a
// recompute. Other elements are untouched.
func (e *Engine) UpdateBounds(id string, r geom.Rect) bool {
	if !e.reg.UpdateBounds(id, r) {
		return false
	}
	e.requestLayout()
	return true
}

// SetExpanded records an element's expansion state. A change schedules
// re-measurement over the settle frames. It reports whether the state
// changed.
func (e *Engine) SetExpanded(id string, expanded bool) bool {
	if !e.reg.SetExpanded(id, expanded) {
		return false
	}
	if g, ok := e.settles[id]; ok {
		g.Cancel()
	}
	e.settles[id] = e.sched.Settle(e.opts.SettleFrames, e.settle)
	e.logger.Debug("expansion changed", "id", id, "expanded", expanded)
	return true
}

// TransitionEnded reports that id's size transition has finished. The
// remaining settle retries are cancelled and one recompute is requested.
// It reports whether retries were pending.
func (e *Engine) TransitionEnded(id string) bool {
	g, ok := e.settles[id]
	pending := 0
	if ok {
		pending = g.Cancel()
		delete(e.settles, id)
	}
	if _, known := e.reg.Get(id); known {
		e.RequestRecompute()
	}
	return pending > 0
}

// Settling reports whether id still has settle retries scheduled.
func (e *Engine) Settling(id string) bool {
	g, ok := e.settles[id]
	return ok && g.Pending() > 0
}

// Resize notifies the engine that window metrics or element sizes may have
// changed.
func (e *Engine) Resize() { e.RequestRecompute() }

// RequestRecompute schedules a full re-measure and recompute on the next
// frame, superseding any pending request.
func (e *Engine) RequestRecompute() {
	e.measure = true
	e.requestLayout()
}

// requestLayout schedules a recompute from the stored bounds.
func (e *Engine) requestLayout() {
	e.sched.Request(recomputeKey, e.recompute)
}

// Pending reports whether a recompute is scheduled.
func (e *Engine) Pending() bool { return e.sched.Requested(recomputeKey) }

// Tick advances one animation frame and runs due work.
func (e *Engine) Tick() int {
	n := e.sched.Tick()
	for id, g := range e.settles {
		if g.Pending() == 0 {
			delete(e.settles, id)
		}
	}
	return n
}

// Frame returns the current frame number.
func (e *Engine) Frame() uint64 { return e.sched.Frame() }

// Flush runs a pending or forced recompute immediately.
func (e *Engine) Flush() {
	e.sched.CancelKey(recomputeKey)
	e.measure = true
	e.recompute()
}

// =============================================================================
// Recompute
// =============================================================================

// settle re-measures on the current frame. If a recompute already ran this
// frame, it defers to the next one instead.
func (e *Engine) settle() {
	if e.ran && e.lastFrame == e.sched.Frame() {
		e.RequestRecompute()
		return
	}
	e.sched.CancelKey(recomputeKey)
	e.measure = true
	e.recompute()
}

func (e *Engine) recompute() {
	start := time.Now()
	e.ran, e.lastFrame = true, e.sched.Frame()
	m := e.host.Metrics()

	layoutChanged := m.LayoutWidth != e.lastLayoutWidth
	if layoutChanged {
		e.reg.UnlockAll()
		e.lastLayoutWidth = m.LayoutWidth
		e.measure = true
	}
	if e.measure {
		e.measureAll(m)
		e.measure = false
	}

	elements := e.reg.Elements()
	vp := territory.Viewport{
		LayoutWidth:           m.LayoutWidth,
		VisibleWidth:          m.VisibleWidth,
		Height:                e.contentHeight(elements, m.InnerHeight),
		ScrollbarCompensation: 0.25 * m.ScrollbarWidth(),
	}
	ts := territory.Calculate(elements, vp, e.opts.territoryOptions())
	rs := rings.GenerateAll(ts, e.opts.Spacing)

	prev := e.snap.Load()
	e.version++
	e.snap.Store(&Snapshot{
		Version:     e.version,
		Frame:       e.sched.Frame(),
		Viewport:    vp,
		Elements:    elements,
		Territories: ts,
		Rings:       rs,
		Offsets:     e.tracker.Offsets(),
	})

	elapsed := time.Since(start)
	if prev.Viewport != vp {
		observability.Layout().OnViewportChange(e.ctx, vp.LayoutWidth, vp.VisibleWidth, vp.Height, layoutChanged)
	}
	observability.Layout().OnRecompute(e.ctx, len(elements), len(ts), rings.Count(rs), elapsed)
	e.logger.Debug("recomputed layout",
		"version", e.version,
		"elements", len(elements),
		"territories", len(ts),
		"layout_width", vp.LayoutWidth,
		"visible_width", vp.VisibleWidth,
		"height", vp.Height,
		"duration", elapsed)
}

// measureAll re-reads every element through its measurer and converts the
// result to base bounds.
func (e *Engine) measureAll(m Metrics) {
	for _, id := range e.reg.IDs() {
		mr, ok := e.reg.Measurer(id)
		if !ok {
			continue
		}
		el, _ := e.reg.Get(id)
		e.reg.UpdateBounds(id, e.baseBounds(el, mr.Measure(), m))
		if !el.Pinned && !el.XLocked {
			got, _ := e.reg.Get(id)
			e.reg.LockX(id, got.Bounds.X)
		}
	}
}

func (e *Engine) baseBounds(el registry.Element, measured geom.Rect, m Metrics) geom.Rect {
	off := e.tracker.Offset(el.ID)
	if el.Pinned {
		return measured.Translate(geom.Offset{X: -off.X, Y: -off.Y})
	}
	x := measured.X + m.ScrollX - off.X
	if el.XLocked {
		x = el.LockedX
	}
	return geom.Rect{
		X:      x,
		Y:      measured.Y + m.ScrollY - off.Y,
		Width:  measured.Width,
		Height: measured.Height,
	}
}

// contentHeight is the window height or, when scrolling elements extend
// below it, their lowest edge plus padding.
func (e *Engine) contentHeight(elements []registry.Element, innerHeight float64) float64 {
	bottom := 0.0
	for _, el := range elements {
		if el.Pinned || !el.Measured {
			continue
		}
		bottom = max(bottom, el.Bounds.Bottom())
	}
	return max(innerHeight, bottom+e.opts.ContentPadding)
}
