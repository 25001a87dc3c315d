package registry

import (
	"testing"

	"github.com/matzehuels/concentric/pkg/errors"
	"github.com/matzehuels/concentric/pkg/geom"
)

func fixed(r geom.Rect) Measurer {
	return MeasurerFunc(func() geom.Rect { return r })
}

func TestRegister(t *testing.T) {
	r := New()

	if !r.Register("nav-home", CategoryNav, fixed(geom.NewRect(0, 0, 100, 20)), WithPinned(true)) {
		t.Fatal("Register() = false, want true")
	}

	e, ok := r.Get("nav-home")
	if !ok {
		t.Fatal("Get() did not find registered element")
	}
	if e.Category != CategoryNav || !e.Pinned || !e.Measured {
		t.Errorf("element = %+v, want pinned measured nav", e)
	}
	if e.Bounds != geom.NewRect(0, 0, 100, 20) {
		t.Errorf("Bounds = %+v, want seeded from measurer", e.Bounds)
	}
}

type rectMeasurer struct{ r geom.Rect }

func (m *rectMeasurer) Measure() geom.Rect { return m.r }

func TestRegisterWithoutMeasurer(t *testing.T) {
	r := New()

	if r.Register("a", CategoryContent, nil) {
		t.Error("Register(nil) = true, want no-op")
	}
	var f MeasurerFunc
	if r.Register("b", CategoryContent, f) {
		t.Error("Register(nil func) = true, want no-op")
	}
	var p *rectMeasurer
	if r.Register("c", CategoryContent, p) {
		t.Error("Register(nil pointer) = true, want no-op")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}

	if !r.Register("d", CategoryContent, &rectMeasurer{r: geom.NewRect(1, 2, 3, 4)}) {
		t.Fatal("Register(pointer measurer) = false")
	}
	if e, _ := r.Get("d"); e.Bounds != geom.NewRect(1, 2, 3, 4) {
		t.Errorf("bounds = %+v", e.Bounds)
	}
}

func TestRegisterReplaces(t *testing.T) {
	r := New()
	r.Register("a", CategoryContent, fixed(geom.NewRect(0, 0, 10, 10)))
	r.SetExpanded("a", true)
	r.LockX("a", 5)

	r.Register("a", CategorySocial, fixed(geom.NewRect(1, 1, 1, 1)))

	e, _ := r.Get("a")
	if e.Category != CategorySocial || e.Expanded || e.XLocked {
		t.Errorf("replaced element = %+v, want fresh social element", e)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestUnregister(t *testing.T) {
	r := New()
	r.Register("a", CategoryContent, fixed(geom.NewRect(0, 0, 10, 10)))

	if !r.Unregister("a") {
		t.Error("Unregister() = false, want true")
	}
	if r.Unregister("a") {
		t.Error("second Unregister() = true, want false")
	}
	if _, ok := r.Get("a"); ok {
		t.Error("element still present after Unregister")
	}
}

func TestUpdateBoundsIsolated(t *testing.T) {
	r := New()
	r.Register("a", CategoryContent, fixed(geom.NewRect(0, 0, 10, 10)))
	r.Register("b", CategoryContent, fixed(geom.NewRect(0, 20, 10, 10)))

	if !r.UpdateBounds("a", geom.NewRect(0, 0, 10, 50)) {
		t.Fatal("UpdateBounds() = false")
	}
	if r.UpdateBounds("missing", geom.Rect{}) {
		t.Error("UpdateBounds(missing) = true, want false")
	}

	a, _ := r.Get("a")
	b, _ := r.Get("b")
	if a.Bounds.Height != 50 {
		t.Errorf("a.Height = %v, want 50", a.Bounds.Height)
	}
	if b.Bounds != geom.NewRect(0, 20, 10, 10) {
		t.Errorf("b changed: %+v", b.Bounds)
	}
}

func TestSetExpanded(t *testing.T) {
	r := New()
	r.Register("a", CategoryContent, fixed(geom.NewRect(0, 0, 10, 10)))

	if !r.SetExpanded("a", true) {
		t.Error("SetExpanded(true) = false, want change")
	}
	if r.SetExpanded("a", true) {
		t.Error("repeated SetExpanded(true) = true, want no change")
	}
	if r.SetExpanded("missing", true) {
		t.Error("SetExpanded(missing) = true")
	}
}

func TestLockAndUnlock(t *testing.T) {
	r := New()
	r.Register("a", CategoryContent, fixed(geom.NewRect(0, 0, 10, 10)))
	r.Register("b", CategoryContent, fixed(geom.NewRect(0, 0, 10, 10)))

	r.LockX("a", 42)
	r.LockX("b", 7)
	a, _ := r.Get("a")
	if !a.XLocked || a.LockedX != 42 {
		t.Errorf("a = %+v, want locked at 42", a)
	}

	r.UnlockAll()
	for _, e := range r.Elements() {
		if e.XLocked {
			t.Errorf("%s still locked after UnlockAll", e.ID)
		}
	}
}

func TestElementsDeterministic(t *testing.T) {
	r := New()
	for _, id := range []string{"c", "a", "b", "e", "d"} {
		r.Register(id, CategoryContent, fixed(geom.NewRect(0, 0, 1, 1)))
	}

	want := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < 5; i++ {
		got := r.Elements()
		for j, e := range got {
			if e.ID != want[j] {
				t.Fatalf("Elements()[%d] = %s, want %s", j, e.ID, want[j])
			}
		}
	}
	if ids := r.IDs(); len(ids) != 5 || ids[0] != "a" {
		t.Errorf("IDs() = %v", ids)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"nav", CategoryNav, false},
		{"NAV", CategoryNav, false},
		{"content-section", CategoryContent, false},
		{"section", CategoryContent, false},
		{" social ", CategorySocial, false},
		{"footer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidCategory) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidCategory)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
