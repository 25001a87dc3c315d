// Package rings generates the concentric outlines that fill each territory
// around its owning element.
//
// The first ring of a territory is the element's own rectangle. Every
// further ring is the previous unclamped ring grown by a constant spacing
// on all four sides and then clamped to the territory. Generation stops
// when a clamped ring would be empty or once a ring reaches the territory
// edge on every side; that terminal ring fills the territory exactly.
package rings

import (
	"math"

	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/registry"
	"github.com/matzehuels/concentric/pkg/territory"
)

// DefaultSpacing is the distance between consecutive rings.
const DefaultSpacing = 12.0

const (
	// stepBuffer is added to the distance-derived step count so rounding
	// never cuts off the terminal ring.
	stepBuffer = 2

	// maxSteps bounds generation when the derived count is unusable
	// (infinite or NaN geometry) or absurdly large.
	maxSteps = 4096
)

// Set holds the rings of one territory.
type Set struct {
	ID       string            `json:"id"`
	Category registry.Category `json:"category"`
	Rings    []geom.Rect       `json:"rings"`
}

// Generate returns the rings for t, innermost first. A spacing that is not
// positive yields only the element's own rectangle.
func Generate(t territory.Territory, spacing float64) []geom.Rect {
	elem := t.ElementBounds
	rings := []geom.Rect{elem}
	if !(spacing > 0) {
		return rings
	}

	b := t.TerritoryBounds
	cur := elem
	for range stepLimit(elem, b, spacing) {
		next := cur.Expand(spacing)
		clamped := next.ClampTo(b)
		if clamped.IsEmpty() {
			break
		}
		rings = append(rings, clamped)
		if covers(next, b) {
			break
		}
		cur = next
	}
	return rings
}

// GenerateAll returns one Set per territory, in territory order.
func GenerateAll(ts []territory.Territory, spacing float64) []Set {
	if len(ts) == 0 {
		return nil
	}
	out := make([]Set, len(ts))
	for i, t := range ts {
		out[i] = Set{ID: t.ID, Category: t.Category, Rings: Generate(t, spacing)}
	}
	return out
}

// Find returns the ring set for id.
func Find(sets []Set, id string) (Set, bool) {
	for _, s := range sets {
		if s.ID == id {
			return s, true
		}
	}
	return Set{}, false
}

// Count returns the total number of rings across all sets.
func Count(sets []Set) int {
	n := 0
	for _, s := range sets {
		n += len(s.Rings)
	}
	return n
}

// covers reports whether r reaches or passes every edge of b.
func covers(r geom.Rect, b geom.Bounds) bool {
	return r.Left() <= b.Left && r.Top() <= b.Top &&
		r.Right() >= b.Right && r.Bottom() >= b.Bottom
}

// stepLimit is the number of expansions needed to reach the farthest
// territory edge, plus a small buffer.
func stepLimit(elem geom.Rect, b geom.Bounds, spacing float64) int {
	dist := max(
		elem.Left()-b.Left,
		elem.Top()-b.Top,
		b.Right-elem.Right(),
		b.Bottom-elem.Bottom(),
		0,
	)
	steps := math.Ceil(dist / spacing)
	if math.IsNaN(steps) || steps > maxSteps {
		return maxSteps
	}
	return int(steps) + stepBuffer
}
