package concentric

import (
	"maps"

	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/registry"
	"github.com/matzehuels/concentric/pkg/render"
	"github.com/matzehuels/concentric/pkg/rings"
	"github.com/matzehuels/concentric/pkg/territory"
)

// Snapshot is one consistent view of the layout. Snapshots are never
// modified after publication.
type Snapshot struct {
	// Version increases with every publication.
	Version uint64 `json:"version"`
	// Frame is the scheduler frame the snapshot was published on.
	Frame uint64 `json:"frame"`

	Viewport    territory.Viewport     `json:"viewport"`
	Elements    []registry.Element     `json:"elements"`
	Territories []territory.Territory  `json:"territories"`
	Rings       []rings.Set            `json:"rings"`
	Offsets     map[string]geom.Offset `json:"offsets,omitempty"`
}

// Territory returns the territory owned by id.
func (s *Snapshot) Territory(id string) (territory.Territory, bool) {
	return territory.Find(s.Territories, id)
}

// RingsFor returns the rings of id, innermost first.
func (s *Snapshot) RingsFor(id string) []geom.Rect {
	set, _ := rings.Find(s.Rings, id)
	return set.Rings
}

// Offset returns the drag offset of id.
func (s *Snapshot) Offset(id string) geom.Offset {
	return s.Offsets[id]
}

// Layout converts the snapshot to renderer input.
func (s *Snapshot) Layout() render.Layout {
	return render.Layout{
		Viewport:    s.Viewport,
		Territories: s.Territories,
		Rings:       s.Rings,
		Offsets:     s.Offsets,
	}
}

// withOffsets returns a copy of s carrying new offsets.
func (s *Snapshot) withOffsets(offsets map[string]geom.Offset) *Snapshot {
	next := *s
	next.Offsets = maps.Clone(offsets)
	return &next
}
