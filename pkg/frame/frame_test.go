package frame

import (
	"slices"
	"testing"
)

func TestAfter(t *testing.T) {
	s := New()
	var ran []int
	for _, n := range []int{2, 0, -3, 1} {
		s.After(n, func() { ran = append(ran, n) })
	}

	wantPerTick := [][]int{{0, -3}, {0, -3, 1}, {0, -3, 1, 2}, {0, -3, 1, 2}}
	for i, want := range wantPerTick {
		s.Tick()
		if !slices.Equal(ran, want) {
			t.Fatalf("after tick %d: ran = %v, want %v", i+1, ran, want)
		}
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
	if s.Frame() != 4 {
		t.Errorf("Frame() = %d, want 4", s.Frame())
	}
}

func TestRequestCoalesces(t *testing.T) {
	s := New()
	calls := 0
	for range 10 {
		s.Request("recompute", func() { calls++ })
	}
	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", s.Pending())
	}
	if !s.Requested("recompute") {
		t.Error("Requested() = false")
	}

	if n := s.Tick(); n != 1 || calls != 1 {
		t.Errorf("Tick() ran %d, calls = %d; want 1, 1", n, calls)
	}
	if s.Requested("recompute") {
		t.Error("Requested() = true after run")
	}
}

func TestRequestSupersedes(t *testing.T) {
	s := New()
	var got string
	s.Request("k", func() { got = "first" })
	s.Request("k", func() { got = "second" })
	s.Tick()
	if got != "second" {
		t.Errorf("got %q, want second", got)
	}
}

func TestCancel(t *testing.T) {
	s := New()
	ran := false
	h := s.After(0, func() { ran = true })

	if !s.Cancel(h) {
		t.Fatal("Cancel() = false")
	}
	if s.Cancel(h) {
		t.Error("second Cancel() = true")
	}
	s.Tick()
	if ran {
		t.Error("cancelled callback ran")
	}

	s.Request("k", func() { ran = true })
	if !s.CancelKey("k") || s.CancelKey("k") {
		t.Error("CancelKey() did not report exactly one removal")
	}
	s.Tick()
	if ran {
		t.Error("cancelled request ran")
	}
}

func TestTickDefersNestedScheduling(t *testing.T) {
	s := New()
	var order []string
	s.After(0, func() {
		order = append(order, "outer")
		s.Request("inner", func() { order = append(order, "inner") })
	})

	if n := s.Tick(); n != 1 {
		t.Fatalf("first Tick() ran %d, want 1", n)
	}
	s.Tick()
	if !slices.Equal(order, []string{"outer", "inner"}) {
		t.Errorf("order = %v", order)
	}
}

func TestTickSkipsCallbacksCancelledMidTick(t *testing.T) {
	s := New()
	ran := false
	var h Handle
	s.After(0, func() { s.Cancel(h) })
	h = s.After(0, func() { ran = true })

	if n := s.Tick(); n != 1 {
		t.Errorf("Tick() ran %d, want 1", n)
	}
	if ran {
		t.Error("callback cancelled earlier in the same tick still ran")
	}
}

func TestSettle(t *testing.T) {
	s := New()
	var frames []uint64
	g := s.Settle(DefaultSettleFrames, func() { frames = append(frames, s.Frame()) })

	for range 5 {
		s.Tick()
	}
	if !slices.Equal(frames, []uint64{1, 2, 3, 4}) {
		t.Fatalf("frames = %v, want [1 2 3 4]", frames)
	}
	if g.Pending() != 4 {
		t.Errorf("Pending() = %d, want 4", g.Pending())
	}

	if n := g.Cancel(); n != 4 {
		t.Errorf("Cancel() = %d, want 4", n)
	}
	for range 40 {
		s.Tick()
	}
	if len(frames) != 4 {
		t.Errorf("callbacks ran after Cancel: %v", frames)
	}
}
