package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/concentric/pkg/errors"
	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/rings"
	"github.com/matzehuels/concentric/pkg/territory"
)

// Supported output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatText = "txt"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatText}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
}

// Layout is the renderer input.
type Layout struct {
	Viewport    territory.Viewport     `json:"viewport"`
	Territories []territory.Territory  `json:"territories"`
	Rings       []rings.Set            `json:"rings"`
	Offsets     map[string]geom.Offset `json:"offsets,omitempty"`
}

// Width is the canvas width: the visible part of the viewport.
func (l Layout) Width() float64 {
	if l.Viewport.VisibleWidth > 0 {
		return l.Viewport.VisibleWidth
	}
	return l.Viewport.LayoutWidth
}

// Height is the canvas height.
func (l Layout) Height() float64 { return l.Viewport.Height }

// IsEmpty reports whether there is nothing to draw.
func (l Layout) IsEmpty() bool {
	return l.Viewport.IsZero() || len(l.Territories) == 0
}

// RenderJSON serialises the layout.
func RenderJSON(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return append(data, '\n'), nil
}

// Scaled returns l with every coordinate divided by sx horizontally and sy
// vertically. It maps layout units onto coarser canvases such as text
// cells.
func (l Layout) Scaled(sx, sy float64) Layout {
	if sx <= 0 || sy <= 0 || (sx == 1 && sy == 1) {
		return l
	}
	rect := func(r geom.Rect) geom.Rect {
		return geom.NewRect(r.X/sx, r.Y/sy, r.Width/sx, r.Height/sy)
	}
	bounds := func(b geom.Bounds) geom.Bounds {
		return geom.Bounds{Top: b.Top / sy, Right: b.Right / sx, Bottom: b.Bottom / sy, Left: b.Left / sx}
	}

	out := Layout{
		Viewport: territory.Viewport{
			LayoutWidth:           l.Viewport.LayoutWidth / sx,
			VisibleWidth:          l.Viewport.VisibleWidth / sx,
			Height:                l.Viewport.Height / sy,
			ScrollbarCompensation: l.Viewport.ScrollbarCompensation / sx,
		},
		Territories: make([]territory.Territory, len(l.Territories)),
		Rings:       make([]rings.Set, len(l.Rings)),
	}
	for i, t := range l.Territories {
		t.ElementBounds = rect(t.ElementBounds)
		t.TerritoryBounds = bounds(t.TerritoryBounds)
		out.Territories[i] = t
	}
	for i, set := range l.Rings {
		rs := make([]geom.Rect, len(set.Rings))
		for j, r := range set.Rings {
			rs[j] = rect(r)
		}
		set.Rings = rs
		out.Rings[i] = set
	}
	if l.Offsets != nil {
		out.Offsets = make(map[string]geom.Offset, len(l.Offsets))
		for id, o := range l.Offsets {
			out.Offsets[id] = geom.Offset{X: o.X / sx, Y: o.Y / sy}
		}
	}
	return out
}
