package territory

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/registry"
)

func el(id string, c registry.Category, x, y, w, h float64) registry.Element {
	return registry.Element{ID: id, Category: c, Bounds: geom.NewRect(x, y, w, h), Measured: true}
}

func square(size float64) Viewport {
	return Viewport{LayoutWidth: size, VisibleWidth: size, Height: size}
}

func mustFind(t *testing.T, ts []Territory, id string) geom.Bounds {
	t.Helper()
	tr, ok := Find(ts, id)
	if !ok {
		t.Fatalf("territory %q not found in %+v", id, ts)
	}
	return tr.TerritoryBounds
}

func TestCalculateNavAndContent(t *testing.T) {
	elements := []registry.Element{
		el("nav-home", registry.CategoryNav, 0, 0, 100, 20),
		el("about", registry.CategoryContent, 0, 40, 300, 200),
	}

	ts := Calculate(elements, square(400), Options{Gap: 8})
	if len(ts) != 2 {
		t.Fatalf("len = %d, want 2", len(ts))
	}

	tests := []struct {
		id   string
		want geom.Bounds
	}{
		{"nav-home", geom.Bounds{Top: 4, Right: 396, Bottom: 26, Left: 4}},
		{"about", geom.Bounds{Top: 34, Right: 396, Bottom: 396, Left: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := mustFind(t, ts, tt.id); got != tt.want {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateRowSplits(t *testing.T) {
	elements := []registry.Element{
		el("nav-b", registry.CategoryNav, 200, 10, 100, 20),
		el("nav-a", registry.CategoryNav, 10, 10, 100, 20),
		el("content", registry.CategoryContent, 20, 40, 300, 200),
		el("social-2", registry.CategorySocial, 100, 350, 40, 20),
		el("social-1", registry.CategorySocial, 20, 350, 40, 20),
	}

	ts := Calculate(elements, square(400), Options{Gap: 8})

	wantOrder := []string{"nav-a", "nav-b", "content", "social-1", "social-2"}
	for i, tr := range ts {
		if tr.ID != wantOrder[i] {
			t.Fatalf("order[%d] = %s, want %s", i, tr.ID, wantOrder[i])
		}
	}

	tests := []struct {
		id   string
		want geom.Bounds
	}{
		{"nav-a", geom.Bounds{Top: 4, Right: 151, Bottom: 31, Left: 4}},
		{"nav-b", geom.Bounds{Top: 4, Right: 396, Bottom: 31, Left: 159}},
		{"content", geom.Bounds{Top: 39, Right: 396, Bottom: 291, Left: 4}},
		{"social-1", geom.Bounds{Top: 299, Right: 76, Bottom: 396, Left: 4}},
		{"social-2", geom.Bounds{Top: 299, Right: 396, Bottom: 396, Left: 84}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := mustFind(t, ts, tt.id); got != tt.want {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateOneSidedDividers(t *testing.T) {
	tests := []struct {
		name     string
		elements []registry.Element
		id       string
		want     geom.Bounds
	}{
		{
			name:     "nav only",
			elements: []registry.Element{el("n", registry.CategoryNav, 10, 10, 100, 20)},
			id:       "n",
			want:     geom.Bounds{Top: 4, Right: 396, Bottom: 34, Left: 4},
		},
		{
			name:     "social only",
			elements: []registry.Element{el("s", registry.CategorySocial, 10, 350, 40, 20)},
			id:       "s",
			want:     geom.Bounds{Top: 346, Right: 396, Bottom: 396, Left: 4},
		},
		{
			name:     "content only gets full band",
			elements: []registry.Element{el("c", registry.CategoryContent, 10, 100, 40, 20)},
			id:       "c",
			want:     geom.Bounds{Top: 4, Right: 396, Bottom: 396, Left: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := Calculate(tt.elements, square(400), Options{Gap: 8})
			if got := mustFind(t, ts, tt.id); got != tt.want {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateScrollbarClamp(t *testing.T) {
	elements := []registry.Element{
		el("nav-a", registry.CategoryNav, 10, 10, 100, 20),
		el("nav-b", registry.CategoryNav, 200, 10, 100, 20),
		el("content", registry.CategoryContent, 20, 40, 300, 200),
	}
	vp := Viewport{LayoutWidth: 400, VisibleWidth: 385, Height: 400}

	ts := Calculate(elements, vp, Options{Gap: 8})

	if got := mustFind(t, ts, "nav-a").Right; got != 151 {
		t.Errorf("internal edge moved: nav-a.Right = %v, want 151", got)
	}
	if got := mustFind(t, ts, "nav-b").Right; got != 381 {
		t.Errorf("nav-b.Right = %v, want 381 (visible edge)", got)
	}
	if got := mustFind(t, ts, "content").Right; got != 381 {
		t.Errorf("content.Right = %v, want 381 (visible edge)", got)
	}
}

func TestCalculateColumnMode(t *testing.T) {
	elements := []registry.Element{
		el("n1", registry.CategoryNav, 10, 10, 80, 30),
		el("n2", registry.CategoryNav, 10, 60, 80, 30),
		el("c1", registry.CategoryContent, 150, 10, 200, 100),
		el("c2", registry.CategoryContent, 150, 150, 200, 100),
		el("s1", registry.CategorySocial, 150, 320, 40, 20),
	}

	ts := Calculate(elements, square(400), Options{Gap: 8, Mode: ModeColumn})

	tests := []struct {
		id   string
		want geom.Bounds
	}{
		{"n1", geom.Bounds{Top: 4, Right: 116, Bottom: 46, Left: 4}},
		{"n2", geom.Bounds{Top: 54, Right: 116, Bottom: 396, Left: 4}},
		{"c1", geom.Bounds{Top: 4, Right: 396, Bottom: 126, Left: 124}},
		{"c2", geom.Bounds{Top: 134, Right: 396, Bottom: 281, Left: 124}},
		{"s1", geom.Bounds{Top: 289, Right: 396, Bottom: 396, Left: 124}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := mustFind(t, ts, tt.id); got != tt.want {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}

	assertPartition(t, ts)
	assertCovers(t, ts, square(400), 8)
}

func TestCalculateEmptyInputs(t *testing.T) {
	elements := []registry.Element{el("a", registry.CategoryContent, 0, 0, 10, 10)}

	tests := []struct {
		name     string
		elements []registry.Element
		vp       Viewport
	}{
		{name: "no elements", elements: nil, vp: square(400)},
		{name: "zero width", elements: elements, vp: Viewport{Height: 400}},
		{name: "zero height", elements: elements, vp: Viewport{LayoutWidth: 400, VisibleWidth: 400}},
		{name: "unmeasured only", elements: []registry.Element{{ID: "x", Category: registry.CategoryNav}}, vp: square(400)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Calculate(tt.elements, tt.vp, DefaultOptions()); len(got) != 0 {
				t.Errorf("Calculate() = %+v, want empty", got)
			}
		})
	}
}

func TestCalculateDeterministic(t *testing.T) {
	elements := []registry.Element{
		el("s-1", registry.CategorySocial, 20, 500, 40, 20),
		el("c-b", registry.CategoryContent, 20, 100, 300, 50),
		el("c-a", registry.CategoryContent, 20, 100, 300, 50),
		el("n-1", registry.CategoryNav, 10, 10, 60, 20),
		el("c-c", registry.CategoryContent, 20, 300, 300, 80),
		el("n-2", registry.CategoryNav, 100, 10, 60, 20),
	}
	vp := Viewport{LayoutWidth: 640, VisibleWidth: 625, Height: 600}

	first := Calculate(elements, vp, Options{Gap: 8})
	second := Calculate(elements, vp, Options{Gap: 8})
	if !slices.Equal(first, second) {
		t.Fatal("identical input produced different output")
	}

	reversed := slices.Clone(elements)
	slices.Reverse(reversed)
	if got := Calculate(reversed, vp, Options{Gap: 8}); !slices.Equal(first, got) {
		t.Error("output depends on input order")
	}

	// Equal tops tie-break on id.
	if first[2].ID != "c-a" || first[3].ID != "c-b" {
		t.Errorf("tie order = %s, %s; want c-a, c-b", first[2].ID, first[3].ID)
	}
}

func TestCalculatePartitionAndContainment(t *testing.T) {
	elements := []registry.Element{
		el("n-1", registry.CategoryNav, 20, 10, 60, 20),
		el("n-2", registry.CategoryNav, 120, 10, 60, 20),
		el("n-3", registry.CategoryNav, 220, 10, 60, 20),
		el("c-1", registry.CategoryContent, 20, 60, 300, 100),
		el("c-2", registry.CategoryContent, 20, 200, 300, 150),
		el("c-3", registry.CategoryContent, 20, 400, 300, 60),
		el("s-1", registry.CategorySocial, 20, 520, 40, 20),
		el("s-2", registry.CategorySocial, 100, 520, 40, 20),
	}

	vp := Viewport{LayoutWidth: 500, VisibleWidth: 500, Height: 580}
	ts := Calculate(elements, vp, Options{Gap: 8})
	if len(ts) != len(elements) {
		t.Fatalf("len = %d, want %d", len(ts), len(elements))
	}

	assertPartition(t, ts)
	assertCovers(t, ts, vp, 8)

	// Neighbours in each run are separated by exactly the gap.
	pairs := [][2]string{{"n-1", "n-2"}, {"n-2", "n-3"}, {"s-1", "s-2"}}
	for _, p := range pairs {
		a, b := mustFind(t, ts, p[0]), mustFind(t, ts, p[1])
		if b.Left-a.Right != 8 {
			t.Errorf("%s/%s horizontal gap = %v, want 8", p[0], p[1], b.Left-a.Right)
		}
	}
	stack := [][2]string{{"n-1", "c-1"}, {"c-1", "c-2"}, {"c-2", "c-3"}, {"c-3", "s-1"}}
	for _, p := range stack {
		a, b := mustFind(t, ts, p[0]), mustFind(t, ts, p[1])
		if b.Top-a.Bottom != 8 {
			t.Errorf("%s/%s vertical gap = %v, want 8", p[0], p[1], b.Top-a.Bottom)
		}
	}
}

// assertPartition checks that no two territories overlap and that every
// territory contains its element.
func assertPartition(t *testing.T, ts []Territory) {
	t.Helper()
	for i, a := range ts {
		if !a.TerritoryBounds.Contains(a.ElementBounds) {
			t.Errorf("%s: territory %+v does not contain element %+v", a.ID, a.TerritoryBounds, a.ElementBounds)
		}
		for _, b := range ts[i+1:] {
			if a.TerritoryBounds.Overlaps(b.TerritoryBounds) {
				t.Errorf("%s overlaps %s: %+v / %+v", a.ID, b.ID, a.TerritoryBounds, b.TerritoryBounds)
			}
		}
	}
}

func TestCalculateCoversViewport(t *testing.T) {
	layouts := map[Mode][]registry.Element{
		ModeRows: {
			el("n-1", registry.CategoryNav, 15, 12, 70, 18),
			el("n-2", registry.CategoryNav, 130, 12, 45, 18),
			el("c-1", registry.CategoryContent, 30, 70, 280, 90),
			el("c-2", registry.CategoryContent, 30, 215, 280, 135),
			el("s-1", registry.CategorySocial, 40, 430, 30, 25),
			el("s-2", registry.CategorySocial, 95, 430, 30, 25),
		},
		ModeColumn: {
			el("n-1", registry.CategoryNav, 10, 10, 60, 20),
			el("n-2", registry.CategoryNav, 10, 50, 60, 20),
			el("c-1", registry.CategoryContent, 120, 20, 300, 100),
			el("c-2", registry.CategoryContent, 120, 170, 300, 120),
			el("s-1", registry.CategorySocial, 120, 420, 30, 25),
			el("s-2", registry.CategorySocial, 180, 420, 30, 25),
		},
	}
	vp := Viewport{LayoutWidth: 520, VisibleWidth: 505, Height: 490}

	for _, mode := range []Mode{ModeRows, ModeColumn} {
		elements := layouts[mode]
		for _, gap := range []float64{0, 6, 10} {
			t.Run(fmt.Sprintf("%s/gap=%g", mode, gap), func(t *testing.T) {
				ts := Calculate(elements, vp, Options{Gap: gap, Mode: mode})
				if len(ts) != len(elements) {
					t.Fatalf("len = %d, want %d", len(ts), len(elements))
				}
				assertPartition(t, ts)
				assertCovers(t, ts, vp, gap)
			})
		}
	}
}

// assertCovers checks that the territories tile the visible viewport up to
// the gap: the outermost edges sit gap/2 inside the viewport, and growing
// every territory by gap/2 covers the viewport with no holes.
func assertCovers(t *testing.T, ts []Territory, vp Viewport, gap float64) {
	t.Helper()
	half := gap / 2
	w, h := vp.VisibleWidth, vp.Height

	outer := ts[0].TerritoryBounds
	grown := make([]geom.Bounds, len(ts))
	area := 0.0
	for i, tr := range ts {
		b := tr.TerritoryBounds
		outer.Top = min(outer.Top, b.Top)
		outer.Left = min(outer.Left, b.Left)
		outer.Right = max(outer.Right, b.Right)
		outer.Bottom = max(outer.Bottom, b.Bottom)

		g := geom.Bounds{
			Top:    max(b.Top-half, 0),
			Right:  min(b.Right+half, w),
			Bottom: min(b.Bottom+half, h),
			Left:   max(b.Left-half, 0),
		}
		grown[i] = g
		area += (g.Right - g.Left) * (g.Bottom - g.Top)
	}

	want := geom.Bounds{Top: half, Right: w - half, Bottom: h - half, Left: half}
	if outer != want {
		t.Errorf("outer edges = %+v, want %+v", outer, want)
	}
	if math.Abs(area-w*h) > 1e-6 {
		t.Errorf("grown territories cover area %v, want %v", area, w*h)
	}

	for y := 0.25; y < h; y += 2 {
		for x := 0.25; x < w; x += 2 {
			covered := false
			for _, g := range grown {
				if x >= g.Left && x <= g.Right && y >= g.Top && y <= g.Bottom {
					covered = true
					break
				}
			}
			if !covered {
				t.Fatalf("point (%g, %g) is not covered by any territory", x, y)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", ModeRows, false},
		{"rows", ModeRows, false},
		{"Column", ModeColumn, false},
		{"grid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
