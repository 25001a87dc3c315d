// Package frame provides a deterministic, frame-granular callback
// scheduler.
//
// The layout engine runs on a single goroutine and does its deferred work
// at animation-frame boundaries: a host calls [Scheduler.Tick] once per
// frame and the scheduler runs whatever became due. Nothing here starts a
// goroutine or reads a clock, so tests drive time by ticking.
//
// Two scheduling forms are offered. [Scheduler.After] runs a callback a
// fixed number of frames from now. [Scheduler.Request] is keyed: a newer
// request under the same key supersedes a pending one, which coalesces
// bursts of triggers into at most one run per frame.
package frame

import (
	"cmp"
	"slices"
	"time"
)

// DefaultInterval is the nominal duration of one animation frame.
const DefaultInterval = 16 * time.Millisecond

// DefaultSettleFrames is the back-off schedule, in frames, used to
// re-measure after an element's size transition starts.
var DefaultSettleFrames = []int{0, 1, 2, 3, 5, 10, 20, 30}

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

type timer struct {
	due uint64
	seq uint64
	key string
	fn  func()
}

// Scheduler queues callbacks against a frame counter.
// It is not safe for concurrent use.
type Scheduler struct {
	frame  uint64
	seq    uint64
	timers map[Handle]*timer
	keys   map[string]Handle
}

// New creates a scheduler at frame 0.
func New() *Scheduler {
	return &Scheduler{
		timers: make(map[Handle]*timer),
		keys:   make(map[string]Handle),
	}
}

// Frame returns the number of completed ticks.
func (s *Scheduler) Frame() uint64 { return s.frame }

// Pending returns the number of callbacks waiting to run.
func (s *Scheduler) Pending() int { return len(s.timers) }

// After schedules fn to run on the tick that is frames ticks after the
// next one. After(0, fn) runs on the next tick. Negative values are
// treated as zero.
func (s *Scheduler) After(frames int, fn func()) Handle {
	return s.add(max(frames, 0), "", fn)
}

// Request schedules fn for the next tick under key, cancelling any
// callback still pending under the same key.
func (s *Scheduler) Request(key string, fn func()) Handle {
	if h, ok := s.keys[key]; ok {
		s.Cancel(h)
	}
	h := s.add(0, key, fn)
	s.keys[key] = h
	return h
}

// Requested reports whether a callback is pending under key.
func (s *Scheduler) Requested(key string) bool {
	_, ok := s.keys[key]
	return ok
}

func (s *Scheduler) add(frames int, key string, fn func()) Handle {
	s.seq++
	h := Handle(s.seq)
	s.timers[h] = &timer{due: s.frame + 1 + uint64(frames), seq: s.seq, key: key, fn: fn}
	return h
}

// Cancel removes a pending callback. It reports whether one was removed.
func (s *Scheduler) Cancel(h Handle) bool {
	t, ok := s.timers[h]
	if !ok {
		return false
	}
	delete(s.timers, h)
	if t.key != "" && s.keys[t.key] == h {
		delete(s.keys, t.key)
	}
	return true
}

// CancelKey removes the callback pending under key.
func (s *Scheduler) CancelKey(key string) bool {
	h, ok := s.keys[key]
	if !ok {
		return false
	}
	return s.Cancel(h)
}

// Tick advances one frame and runs every callback that is now due, in the
// order they were scheduled. Callbacks scheduled while ticking run on a
// later tick. Tick returns the number of callbacks run.
func (s *Scheduler) Tick() int {
	s.frame++

	var due []Handle
	for h, t := range s.timers {
		if t.due <= s.frame {
			due = append(due, h)
		}
	}
	slices.SortFunc(due, func(a, b Handle) int {
		return cmp.Compare(s.timers[a].seq, s.timers[b].seq)
	})

	ran := 0
	for _, h := range due {
		t, ok := s.timers[h]
		if !ok {
			// Cancelled by an earlier callback in this tick.
			continue
		}
		s.Cancel(h)
		t.fn()
		ran++
	}
	return ran
}

// Group is a set of callbacks that can be cancelled together.
type Group struct {
	s       *Scheduler
	handles []Handle
}

// Settle schedules fn once for every entry of frames.
func (s *Scheduler) Settle(frames []int, fn func()) *Group {
	g := &Group{s: s, handles: make([]Handle, 0, len(frames))}
	for _, f := range frames {
		g.handles = append(g.handles, s.After(f, fn))
	}
	return g
}

// Pending returns how many of the group's callbacks have not run yet.
func (g *Group) Pending() int {
	n := 0
	for _, h := range g.handles {
		if _, ok := g.s.timers[h]; ok {
			n++
		}
	}
	return n
}

// Cancel removes every callback of the group that has not run yet and
// returns how many were removed.
func (g *Group) Cancel() int {
	n := 0
	for _, h := range g.handles {
		if g.s.Cancel(h) {
			n++
		}
	}
	g.handles = nil
	return n
}
