// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout recomputes, drag sessions, scene loading, and
// rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the layout packages
// never import a logging or metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetDragHooks(&myDragHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	// ... recompute territories and rings ...
//	observability.Layout().OnRecompute(ctx, elements, territories, rings, time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout engine.
type LayoutHooks interface {
	// OnRecompute records one published layout snapshot.
	OnRecompute(ctx context.Context, elements, territories, rings int, duration time.Duration)

	// OnViewportChange records a viewport update. layoutChanged is false
	// when only the visible width (scrollbar) or height moved.
	OnViewportChange(ctx context.Context, layoutWidth, visibleWidth, height float64, layoutChanged bool)
}

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from drag sessions.
type DragHooks interface {
	// OnDragStart records the start of a session.
	OnDragStart(ctx context.Context, id, source string)

	// OnDragEnd records a release. click is true when the pointer never
	// left the click threshold.
	OnDragEnd(ctx context.Context, id string, x, y float64, click bool)

	// OnDragCancel records an abandoned session.
	OnDragCancel(ctx context.Context, id string)
}

// =============================================================================
// IO Hooks
// =============================================================================

// IOHooks receives events from scene loading and rendering.
type IOHooks interface {
	// OnSceneLoad records a scene file being decoded.
	OnSceneLoad(ctx context.Context, path, format string, elements int, duration time.Duration, err error)

	// OnRender records an output document being produced.
	OnRender(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnRecompute(context.Context, int, int, int, time.Duration)         {}
func (NoopLayoutHooks) OnViewportChange(context.Context, float64, float64, float64, bool) {}

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnDragStart(context.Context, string, string)               {}
func (NoopDragHooks) OnDragEnd(context.Context, string, float64, float64, bool) {}
func (NoopDragHooks) OnDragCancel(context.Context, string)                      {}

// NoopIOHooks is a no-op implementation of IOHooks.
type NoopIOHooks struct{}

func (NoopIOHooks) OnSceneLoad(context.Context, string, string, int, time.Duration, error) {}
func (NoopIOHooks) OnRender(context.Context, string, int, time.Duration, error)            {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	dragHooks   DragHooks   = NoopDragHooks{}
	ioHooks     IOHooks     = NoopIOHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any engine is created.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetDragHooks registers custom drag hooks.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetIOHooks registers custom scene and render hooks.
func SetIOHooks(h IOHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		ioHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// IO returns the registered scene and render hooks.
func IO() IOHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return ioHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	dragHooks = NoopDragHooks{}
	ioHooks = NoopIOHooks{}
}
