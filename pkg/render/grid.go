package render

import (
	"math"
	"strings"

	"github.com/matzehuels/concentric/pkg/geom"
)

// Box is a set of box-drawing runes.
type Box struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

// Box styles used by RenderText.
var (
	LightBox  = Box{'┌', '┐', '└', '┘', '─', '│'}
	HeavyBox  = Box{'┏', '┓', '┗', '┛', '━', '┃'}
	DoubleBox = Box{'╔', '╗', '╚', '╝', '═', '║'}
	DashedBox = Box{'┌', '┐', '└', '┘', '╌', '╎'}
)

// Grid is a fixed-size canvas of runes. Writes outside the grid are
// dropped.
type Grid struct {
	w, h  int
	cells []rune
}

// NewGrid creates a blank grid.
func NewGrid(w, h int) *Grid {
	w, h = max(w, 0), max(h, 0)
	g := &Grid{w: w, h: h, cells: make([]rune, w*h)}
	g.Clear()
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() (int, int) { return g.w, g.h }

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
}

// Set writes r at (x, y).
func (g *Grid) Set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = r
}

// At returns the rune at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) rune {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0
	}
	return g.cells[y*g.w+x]
}

// Text writes s starting at (x, y), truncated at the grid edge.
func (g *Grid) Text(x, y int, s string) {
	for _, r := range s {
		g.Set(x, y, r)
		x++
	}
}

// cellSpan converts a continuous interval to the inclusive cell range
// whose centres it covers.
func cellSpan(lo, hi float64) (int, int) {
	return int(math.Round(lo)), int(math.Round(hi)) - 1
}

// StrokeRect outlines r with box runes. Rectangles narrower or shorter than
// two cells are skipped.
func (g *Grid) StrokeRect(r geom.Rect, b Box) {
	x0, x1 := cellSpan(r.Left(), r.Right())
	y0, y1 := cellSpan(r.Top(), r.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		g.Set(x, y0, b.Horizontal)
		g.Set(x, y1, b.Horizontal)
	}
	for y := y0 + 1; y < y1; y++ {
		g.Set(x0, y, b.Vertical)
		g.Set(x1, y, b.Vertical)
	}
	g.Set(x0, y0, b.TopLeft)
	g.Set(x1, y0, b.TopRight)
	g.Set(x0, y1, b.BottomLeft)
	g.Set(x1, y1, b.BottomRight)
}

// FillRect fills the interior of r with ch.
func (g *Grid) FillRect(r geom.Rect, ch rune) {
	x0, x1 := cellSpan(r.Left(), r.Right())
	y0, y1 := cellSpan(r.Top(), r.Bottom())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.Set(x, y, ch)
		}
	}
}

// Lines returns the grid rows with trailing spaces trimmed.
func (g *Grid) Lines() []string {
	out := make([]string, g.h)
	for y := range g.h {
		out[y] = strings.TrimRight(string(g.cells[y*g.w:(y+1)*g.w]), " ")
	}
	return out
}

// String joins the rows with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// TextOption configures RenderText.
type TextOption func(*textRenderer)

type textRenderer struct {
	labels      bool
	territories bool
	label       func(id string) string
}

// WithLabels writes each element's id inside its box.
func WithLabels() TextOption { return func(r *textRenderer) { r.labels = true } }

// WithLabelFunc overrides the text written inside each element box.
func WithLabelFunc(f func(id string) string) TextOption {
	return func(r *textRenderer) { r.labels = true; r.label = f }
}

// WithTerritoryOutlines draws territory bounds with dashed runes.
func WithTerritoryOutlines() TextOption { return func(r *textRenderer) { r.territories = true } }

// RenderText rasterises l at one cell per unit into g. Rings use light
// runes and elements heavy runes, drawn at their dragged positions.
func RenderText(g *Grid, l Layout, opts ...TextOption) {
	r := textRenderer{label: func(id string) string { return id }}
	for _, opt := range opts {
		opt(&r)
	}

	if r.territories {
		for _, t := range l.Territories {
			g.StrokeRect(t.TerritoryBounds.Rect(), DashedBox)
		}
	}
	for _, set := range l.Rings {
		for i, ring := range set.Rings {
			if i == 0 {
				continue
			}
			g.StrokeRect(ring, LightBox)
		}
	}
	for _, t := range l.Territories {
		box := t.ElementBounds.Translate(l.Offsets[t.ID])
		g.FillRect(box, ' ')
		g.StrokeRect(box, HeavyBox)
		if r.labels {
			x0, x1 := cellSpan(box.Left(), box.Right())
			y0, y1 := cellSpan(box.Top(), box.Bottom())
			label := r.label(t.ID)
			if room := x1 - x0 - 1; room > 0 && len([]rune(label)) > room {
				label = string([]rune(label)[:room])
			}
			if x1-x0 > 1 && y1-y0 > 1 {
				g.Text(x0+1, y0+1, label)
			}
		}
	}
}
