package scene

import (
	"context"
	"maps"

	"github.com/matzehuels/concentric/pkg/concentric"
	"github.com/matzehuels/concentric/pkg/drag"
	"github.com/matzehuels/concentric/pkg/errors"
	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/registry"
	"github.com/matzehuels/concentric/pkg/territory"
)

// Result is a solved scene.
type Result struct {
	*concentric.Snapshot
	Options concentric.Options `json:"-"`
}

// Solve computes territories, rings and constrained offsets for s. Scene
// settings override opts, which usually start from
// concentric.DefaultOptions.
func Solve(ctx context.Context, s *Scene, opts concentric.Options) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Layout.Gap != nil {
		opts.Gap = *s.Layout.Gap
	}
	if s.Layout.Spacing != nil {
		opts.Spacing = *s.Layout.Spacing
	}
	if s.Layout.Mode != "" {
		mode, _ := territory.ParseMode(s.Layout.Mode)
		opts.Mode = mode
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	metrics := s.Viewport
	if metrics.VisibleWidth == 0 {
		metrics.VisibleWidth = metrics.LayoutWidth
	}
	e := concentric.New(ctx, concentric.StaticHost(metrics), opts)
	e.SetOffsets(s.Offsets)

	for _, el := range s.Elements {
		cat, _ := registry.ParseCategory(el.Category)
		pinned := el.IsPinned(cat)
		e.Register(el.ID, cat, measurer(e, el, pinned, metrics), registry.WithPinned(pinned))
		if el.Expanded {
			e.SetExpanded(el.ID, true)
		}
	}
	e.Flush()

	snap := e.Snapshot()
	constrained := make(map[string]geom.Offset, len(s.Offsets))
	for id, off := range s.Offsets {
		if t, ok := snap.Territory(id); ok {
			off = drag.Constrain(t.ElementBounds, t.TerritoryBounds, off)
		}
		if !off.IsZero() {
			constrained[id] = off
		}
	}
	if !maps.Equal(constrained, snap.Offsets) {
		e.SetOffsets(constrained)
		snap = e.Snapshot()
	}
	return &Result{Snapshot: snap, Options: opts}, nil
}

// measurer reports el the way a browser would: in viewport coordinates
// with its drag transform applied.
func measurer(e *concentric.Engine, el Element, pinned bool, m concentric.Metrics) registry.Measurer {
	base := el.Rect()
	return registry.MeasurerFunc(func() geom.Rect {
		r := base.Translate(e.Offset(el.ID))
		if pinned {
			return r
		}
		return r.Translate(geom.Offset{X: -m.ScrollX, Y: -m.ScrollY})
	})
}

// Drag returns the offset id would reach if dragged by delta from its
// current offset.
func (r *Result) Drag(id string, delta geom.Offset) (geom.Offset, error) {
	t, ok := r.Territory(id)
	if !ok {
		return geom.Offset{}, errors.New(errors.ErrCodeElementNotFound, "no territory for element %q", id)
	}
	return drag.Constrain(t.ElementBounds, t.TerritoryBounds, r.Offset(id).Add(delta)), nil
}
