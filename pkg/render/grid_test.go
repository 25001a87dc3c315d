package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/concentric/pkg/geom"
)

func TestGridStrokeRect(t *testing.T) {
	g := NewGrid(6, 4)
	g.StrokeRect(geom.NewRect(1, 0, 4, 3), LightBox)

	want := []string{
		" ┌──┐",
		" │  │",
		" └──┘",
		"",
	}
	got := g.Lines()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGridClipsOutOfBounds(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(-1, 0, 'x')
	g.Set(3, 0, 'x')
	g.Set(0, 5, 'x')
	g.Text(1, 1, "hello")

	if g.String() != "\n he" {
		t.Errorf("String() = %q", g.String())
	}
	if g.At(10, 10) != 0 {
		t.Error("At() outside grid should be 0")
	}
}

func TestGridSkipsDegenerateRect(t *testing.T) {
	g := NewGrid(5, 5)
	g.StrokeRect(geom.NewRect(1, 1, 0.4, 3), LightBox)
	if strings.TrimSpace(g.String()) != "" {
		t.Errorf("degenerate rect drew %q", g.String())
	}
}

func TestRenderText(t *testing.T) {
	l := testLayout()
	w, h := int(l.Width()), int(l.Height())
	g := NewGrid(w, h)
	RenderText(g, l, WithLabels())

	out := g.String()
	for _, want := range []string{"┏", "┛", "about", "nav-home"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// about is shifted right by its offset: its top-left corner sits at x=15.
	if r := g.At(15, 20); r != HeavyBox.TopLeft {
		t.Errorf("At(15, 20) = %q, want %q", r, HeavyBox.TopLeft)
	}
}

func TestRenderTextLabelFunc(t *testing.T) {
	l := testLayout()
	g := NewGrid(int(l.Width()), int(l.Height()))
	RenderText(g, l, WithLabelFunc(func(id string) string { return strings.ToUpper(id) }))

	if !strings.Contains(g.String(), "ABOUT") {
		t.Errorf("custom label missing:\n%s", g.String())
	}
}
