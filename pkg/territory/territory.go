package territory

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/concentric/pkg/errors"
	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/registry"
)

// DefaultGap is the separation between adjacent territories.
const DefaultGap = 4.0

// edgeTolerance is how close a right edge must be to the layout edge to be
// treated as touching it.
const edgeTolerance = 1.0

// Mode selects how the nav group is placed relative to the content stack.
type Mode string

const (
	// ModeRows places nav in a top row and social in a bottom row.
	ModeRows Mode = "rows"
	// ModeColumn places nav in a left column; content and social share the
	// region to its right.
	ModeColumn Mode = "column"
)

// ParseMode converts a user-supplied name to a Mode. The empty string
// selects ModeRows.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rows", "row":
		return ModeRows, nil
	case "column", "columns":
		return ModeColumn, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown layout mode %q (must be one of: rows, column)", s)
	}
}

// Viewport describes the area being partitioned.
type Viewport struct {
	// LayoutWidth is the full window width. It does not change when a
	// scrollbar appears.
	LayoutWidth float64 `json:"layout_width" toml:"layout_width" yaml:"layout_width"`

	// VisibleWidth is the width usable for content, excluding a scrollbar.
	VisibleWidth float64 `json:"visible_width" toml:"visible_width" yaml:"visible_width"`

	// Height is the height of the partitioned area.
	Height float64 `json:"height" toml:"height" yaml:"height"`

	// ScrollbarCompensation is a quarter of the scrollbar width, for
	// renderers that offset percentage-based margins.
	ScrollbarCompensation float64 `json:"scrollbar_compensation,omitempty" toml:"scrollbar_compensation" yaml:"scrollbar_compensation,omitempty"`
}

// IsZero reports whether the viewport has no area to partition.
func (v Viewport) IsZero() bool {
	return !(v.LayoutWidth > 0) || !(v.Height > 0)
}

// visible returns the visible width, falling back to the layout width when
// the host has not reported one.
func (v Viewport) visible() float64 {
	if v.VisibleWidth > 0 {
		return v.VisibleWidth
	}
	return v.LayoutWidth
}

// Options controls territory calculation.
type Options struct {
	Gap  float64
	Mode Mode
}

// DefaultOptions returns rows mode with DefaultGap.
func DefaultOptions() Options {
	return Options{Gap: DefaultGap, Mode: ModeRows}
}

// Territory is the region owned by one element.
type Territory struct {
	ID              string            `json:"id"`
	Category        registry.Category `json:"category"`
	ElementBounds   geom.Rect         `json:"element_bounds"`
	TerritoryBounds geom.Bounds       `json:"territory_bounds"`
}

// Calculate partitions the viewport among elements. Elements without
// measured bounds or with an unknown category are skipped. A zero-sized
// viewport or an empty element set yields no territories.
//
// Territories are returned grouped by category (nav, content, social) and
// in sort order within each group.
func Calculate(elements []registry.Element, vp Viewport, opts Options) []Territory {
	if vp.IsZero() || len(elements) == 0 {
		return nil
	}

	gap := opts.Gap
	if !(gap > 0) {
		gap = 0
	}

	g := group(elements, opts.Mode)
	c := calculator{vp: vp, gap: gap}

	if opts.Mode == ModeColumn {
		return c.column(g)
	}
	return c.rows(g)
}

// Find returns the territory owned by id.
func Find(ts []Territory, id string) (Territory, bool) {
	for _, t := range ts {
		if t.ID == id {
			return t, true
		}
	}
	return Territory{}, false
}

// groups holds elements split by category and sorted along their axis.
type groups struct {
	nav, content, social []registry.Element
}

func group(elements []registry.Element, mode Mode) groups {
	var g groups
	for _, e := range elements {
		if !e.Measured {
			continue
		}
		switch e.Category {
		case registry.CategoryNav:
			g.nav = append(g.nav, e)
		case registry.CategoryContent:
			g.content = append(g.content, e)
		case registry.CategorySocial:
			g.social = append(g.social, e)
		}
	}

	if mode == ModeColumn {
		sortBy(g.nav, geom.Rect.Top)
	} else {
		sortBy(g.nav, geom.Rect.Left)
	}
	sortBy(g.content, geom.Rect.Top)
	sortBy(g.social, geom.Rect.Left)
	return g
}

func sortBy(es []registry.Element, key func(geom.Rect) float64) {
	slices.SortFunc(es, func(a, b registry.Element) int {
		if c := cmp.Compare(key(a.Bounds), key(b.Bounds)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// span is a closed interval along one axis.
type span struct {
	lo, hi float64
}

// axis extracts an element's extent along one axis.
type axis struct {
	start, end func(geom.Rect) float64
}

var (
	horizontal = axis{start: geom.Rect.Left, end: geom.Rect.Right}
	vertical   = axis{start: geom.Rect.Top, end: geom.Rect.Bottom}
)

// tessellate splits [lo, hi] among a sorted run of elements. Each boundary
// sits at the midpoint between one element's end and the next one's start.
func tessellate(es []registry.Element, ax axis, lo, hi float64) []span {
	out := make([]span, len(es))
	for i, e := range es {
		s := span{lo: lo, hi: hi}
		if i > 0 {
			s.lo = (ax.end(es[i-1].Bounds) + ax.start(e.Bounds)) / 2
		}
		if i < len(es)-1 {
			s.hi = (ax.end(e.Bounds) + ax.start(es[i+1].Bounds)) / 2
		}
		out[i] = s
	}
	return out
}

// leadingDivider returns the boundary after an outer group that precedes
// the inner one (nav before content). With both present it is the midpoint
// of the gap between them; with only the outer group it sits gap past it;
// otherwise it collapses to the leading viewport edge.
func leadingDivider(outerEnd, innerStart float64, hasOuter, hasInner bool, gap float64) float64 {
	switch {
	case hasOuter && hasInner:
		return (outerEnd + innerStart) / 2
	case hasOuter:
		return outerEnd + gap
	default:
		return 0
	}
}

// trailingDivider is the mirror of leadingDivider for an outer group that
// follows the inner one (social after content).
func trailingDivider(innerEnd, outerStart float64, hasInner, hasOuter bool, gap, edge float64) float64 {
	switch {
	case hasInner && hasOuter:
		return (innerEnd + outerStart) / 2
	case hasOuter:
		return outerStart - gap
	default:
		return edge
	}
}

func maxEnd(es []registry.Element, ax axis, init float64) float64 {
	v := init
	for _, e := range es {
		v = math.Max(v, ax.end(e.Bounds))
	}
	return v
}

func minStart(es []registry.Element, ax axis, init float64) float64 {
	v := init
	for _, e := range es {
		v = math.Min(v, ax.start(e.Bounds))
	}
	return v
}

type calculator struct {
	vp  Viewport
	gap float64
}

// cell builds the inset territory for the rectangle spanned by x and y.
func (c calculator) cell(e registry.Element, x, y span) Territory {
	half := c.gap / 2
	return Territory{
		ID:            e.ID,
		Category:      e.Category,
		ElementBounds: e.Bounds,
		TerritoryBounds: geom.Bounds{
			Top:    y.lo + half,
			Right:  c.clampRight(x.hi - half),
			Bottom: y.hi - half,
			Left:   x.lo + half,
		},
	}
}

// clampRight moves a right edge on the layout edge to the visible edge.
func (c calculator) clampRight(right float64) float64 {
	half := c.gap / 2
	if math.Abs(right-(c.vp.LayoutWidth-half)) < edgeTolerance {
		return c.vp.visible() - half
	}
	return right
}

func (c calculator) rows(g groups) []Territory {
	width, height := c.vp.LayoutWidth, c.vp.Height

	navBottom := maxEnd(g.nav, vertical, 0)
	contentTop := minStart(g.content, vertical, height)
	contentBottom := maxEnd(g.content, vertical, 0)
	socialTop := minStart(g.social, vertical, height)

	navDiv := leadingDivider(navBottom, contentTop, len(g.nav) > 0, len(g.content) > 0, c.gap)
	socialDiv := trailingDivider(contentBottom, socialTop, len(g.content) > 0, len(g.social) > 0, c.gap, height)

	out := make([]Territory, 0, len(g.nav)+len(g.content)+len(g.social))

	for i, x := range tessellate(g.nav, horizontal, 0, width) {
		out = append(out, c.cell(g.nav[i], x, span{lo: 0, hi: navDiv}))
	}
	for i, y := range tessellate(g.content, vertical, navDiv, socialDiv) {
		out = append(out, c.cell(g.content[i], span{lo: 0, hi: width}, y))
	}
	for i, x := range tessellate(g.social, horizontal, 0, width) {
		out = append(out, c.cell(g.social[i], x, span{lo: socialDiv, hi: height}))
	}
	return out
}

func (c calculator) column(g groups) []Territory {
	width, height := c.vp.LayoutWidth, c.vp.Height

	right := append(slices.Clone(g.content), g.social...)
	navRight := maxEnd(g.nav, horizontal, 0)
	regionLeft := minStart(right, horizontal, width)
	navDiv := leadingDivider(navRight, regionLeft, len(g.nav) > 0, len(right) > 0, c.gap)

	contentBottom := maxEnd(g.content, vertical, 0)
	socialTop := minStart(g.social, vertical, height)
	socialDiv := trailingDivider(contentBottom, socialTop, len(g.content) > 0, len(g.social) > 0, c.gap, height)

	out := make([]Territory, 0, len(g.nav)+len(right))

	for i, y := range tessellate(g.nav, vertical, 0, height) {
		out = append(out, c.cell(g.nav[i], span{lo: 0, hi: navDiv}, y))
	}
	for i, y := range tessellate(g.content, vertical, 0, socialDiv) {
		out = append(out, c.cell(g.content[i], span{lo: navDiv, hi: width}, y))
	}
	for i, x := range tessellate(g.social, horizontal, navDiv, width) {
		out = append(out, c.cell(g.social[i], x, span{lo: socialDiv, hi: height}))
	}
	return out
}
