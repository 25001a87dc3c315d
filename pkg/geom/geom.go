// Package geom provides the axis-aligned rectangle primitives shared by the
// territory, ring and drag packages.
//
// Two rectangle shapes are used throughout: [Rect] is origin plus size (what
// a UI toolkit reports for an element), [Bounds] is four absolute edges (what
// a territory is). Both use float64 user units with Y growing downward.
package geom

import "math"

// Point is a position in user units.
type Point struct {
	X, Y float64
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Offset { return Offset{X: p.X - q.X, Y: p.Y - q.Y} }

// Offset is a translation applied to an element as a visual transform.
type Offset struct {
	X float64 `json:"x" toml:"x" yaml:"x"`
	Y float64 `json:"y" toml:"y" yaml:"y"`
}

// Add returns o translated by d.
func (o Offset) Add(d Offset) Offset { return Offset{X: o.X + d.X, Y: o.Y + d.Y} }

// Len returns the Euclidean length of the offset.
func (o Offset) Len() float64 { return math.Hypot(o.X, o.Y) }

// IsZero reports whether the offset is the identity translation.
func (o Offset) IsZero() bool { return o.X == 0 && o.Y == 0 }

// Rect is a rectangle given by its top-left corner and size.
type Rect struct {
	X      float64 `json:"x" toml:"x" yaml:"x"`
	Y      float64 `json:"y" toml:"y" yaml:"y"`
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
}

// NewRect creates a Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Area returns the area of the rectangle, or 0 when it is empty.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Bounds converts the rectangle to edge form.
func (r Rect) Bounds() Bounds {
	return Bounds{Top: r.Top(), Right: r.Right(), Bottom: r.Bottom(), Left: r.Left()}
}

// Translate returns the rectangle moved by o.
func (r Rect) Translate(o Offset) Rect {
	return Rect{X: r.X + o.X, Y: r.Y + o.Y, Width: r.Width, Height: r.Height}
}

// Expand returns the rectangle grown by d on every side. Negative d shrinks it.
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// ClampTo returns the part of r that lies inside b. The result may be empty
// (non-positive width or height) when r and b do not overlap.
func (r Rect) ClampTo(b Bounds) Rect {
	x := math.Max(r.Left(), b.Left)
	y := math.Max(r.Top(), b.Top)
	return Rect{
		X:      x,
		Y:      y,
		Width:  math.Min(r.Right(), b.Right) - x,
		Height: math.Min(r.Bottom(), b.Bottom) - y,
	}
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left() >= r.Left() && o.Top() >= r.Top() &&
		o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Bounds is a rectangle given by its four edges.
type Bounds struct {
	Top    float64 `json:"top" toml:"top" yaml:"top"`
	Right  float64 `json:"right" toml:"right" yaml:"right"`
	Bottom float64 `json:"bottom" toml:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" toml:"left" yaml:"left"`
}

// Width returns the horizontal span.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns the vertical span.
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// IsEmpty reports whether the bounds enclose no area.
func (b Bounds) IsEmpty() bool { return b.Width() <= 0 || b.Height() <= 0 }

// Area returns the enclosed area, or 0 when empty.
func (b Bounds) Area() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Width() * b.Height()
}

// Rect converts the bounds to origin-and-size form.
func (b Bounds) Rect() Rect {
	return Rect{X: b.Left, Y: b.Top, Width: b.Width(), Height: b.Height()}
}

// Contains reports whether r lies entirely inside b.
func (b Bounds) Contains(r Rect) bool {
	return r.Left() >= b.Left && r.Top() >= b.Top &&
		r.Right() <= b.Right && r.Bottom() <= b.Bottom
}

// Intersection returns the overlap of b and o. The result is empty when
// they only touch or do not meet.
func (b Bounds) Intersection(o Bounds) Bounds {
	return Bounds{
		Top:    math.Max(b.Top, o.Top),
		Right:  math.Min(b.Right, o.Right),
		Bottom: math.Min(b.Bottom, o.Bottom),
		Left:   math.Max(b.Left, o.Left),
	}
}

// Overlaps reports whether b and o share a region of positive area.
func (b Bounds) Overlaps(o Bounds) bool {
	return !b.Intersection(o).IsEmpty()
}

// Inset returns b shrunk by d on every side.
func (b Bounds) Inset(d float64) Bounds {
	return Bounds{Top: b.Top + d, Right: b.Right - d, Bottom: b.Bottom - d, Left: b.Left + d}
}
