package geom

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Left() != 10 || r.Top() != 20 {
		t.Errorf("Left/Top = %v/%v, want 10/20", r.Left(), r.Top())
	}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("Right/Bottom = %v/%v, want 40/60", r.Right(), r.Bottom())
	}

	want := Bounds{Top: 20, Right: 40, Bottom: 60, Left: 10}
	if got := r.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if got := want.Rect(); got != r {
		t.Errorf("Rect() = %+v, want %+v", got, r)
	}
}

func TestRectArea(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want float64
	}{
		{name: "positive", rect: NewRect(0, 0, 4, 5), want: 20},
		{name: "zero width", rect: NewRect(0, 0, 0, 5), want: 0},
		{name: "negative height", rect: NewRect(0, 0, 4, -1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Area(); got != tt.want {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		d    float64
		want Rect
	}{
		{name: "grow", rect: NewRect(10, 10, 20, 20), d: 5, want: NewRect(5, 5, 30, 30)},
		{name: "shrink", rect: NewRect(10, 10, 20, 20), d: -5, want: NewRect(15, 15, 10, 10)},
		{name: "zero", rect: NewRect(1, 2, 3, 4), d: 0, want: NewRect(1, 2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Expand(tt.d); got != tt.want {
				t.Errorf("Expand(%v) = %+v, want %+v", tt.d, got, tt.want)
			}
		})
	}
}

func TestRectClampTo(t *testing.T) {
	b := Bounds{Top: 0, Right: 100, Bottom: 100, Left: 0}

	tests := []struct {
		name      string
		rect      Rect
		want      Rect
		wantEmpty bool
	}{
		{name: "inside", rect: NewRect(10, 10, 20, 20), want: NewRect(10, 10, 20, 20)},
		{name: "overhang", rect: NewRect(-10, 90, 50, 50), want: NewRect(0, 90, 40, 10)},
		{name: "covering", rect: NewRect(-5, -5, 200, 200), want: NewRect(0, 0, 100, 100)},
		{name: "disjoint", rect: NewRect(150, 150, 10, 10), wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rect.ClampTo(b)
			if tt.wantEmpty {
				if !got.IsEmpty() {
					t.Errorf("ClampTo() = %+v, want empty", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ClampTo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Top: 0, Right: 50, Bottom: 50, Left: 0}

	if !b.Contains(NewRect(0, 0, 50, 50)) {
		t.Error("bounds should contain a rect of identical extent")
	}
	if b.Contains(NewRect(1, 1, 50, 10)) {
		t.Error("bounds should not contain a rect overhanging the right edge")
	}
}

func TestBoundsOverlaps(t *testing.T) {
	a := Bounds{Top: 0, Right: 10, Bottom: 10, Left: 0}

	tests := []struct {
		name string
		b    Bounds
		want bool
	}{
		{name: "touching edge", b: Bounds{Top: 0, Right: 20, Bottom: 10, Left: 10}, want: false},
		{name: "shared area", b: Bounds{Top: 5, Right: 15, Bottom: 15, Left: 5}, want: true},
		{name: "far away", b: Bounds{Top: 50, Right: 60, Bottom: 60, Left: 50}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	o := Offset{X: 3, Y: 4}
	if o.Len() != 5 {
		t.Errorf("Len() = %v, want 5", o.Len())
	}
	if got := o.Add(Offset{X: -3, Y: -4}); !got.IsZero() {
		t.Errorf("Add() = %+v, want zero", got)
	}
	if got := (Point{X: 5, Y: 5}).Sub(Point{X: 2, Y: 1}); got != (Offset{X: 3, Y: 4}) {
		t.Errorf("Sub() = %+v, want {3 4}", got)
	}
}
