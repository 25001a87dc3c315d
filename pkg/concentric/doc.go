// Package concentric owns the layout subsystem: the element registry, the
// drag offsets, the viewport and the frame scheduler that ties them together.
//
// An [Engine] is driven by a host application. The host registers one
// [registry.Measurer] per mounted UI region, reports window metrics through
// a [Host], forwards pointer events, and calls [Engine.Tick] once per
// animation frame. After every recompute the engine publishes an immutable
// [Snapshot] holding the viewport, the element base bounds, the territories
// and the rings computed from them. Renderers read [Engine.Snapshot] and
// never observe a viewport paired with stale bounds.
//
// # Coordinates
//
// Measurers report viewport-relative rectangles that include the element's
// current drag offset. The engine subtracts the offset to recover the base
// rectangle and, for elements that scroll with the page, adds the scroll
// position to obtain document coordinates. Pinned elements (nav by
// default) keep viewport coordinates.
//
// An element's X coordinate is captured on first measurement and reused
// until the host's layout width changes. A scrollbar appearing changes only
// the visible width, so elements do not shift horizontally and trigger the
// scrollbar to disappear again.
//
// # Scheduling
//
// Mutations never recompute synchronously. They request a recompute on the
// next frame, and requests made within one frame coalesce into a single
// run. Expanding or collapsing an element additionally schedules a series
// of re-measurements ([frame.DefaultSettleFrames]) because its size
// transition completes over several frames. A host that can observe the
// end of the transition calls [Engine.TransitionEnded] to cancel the
// remaining retries.
//
// The engine is not safe for concurrent mutation; all calls except
// [Engine.Snapshot] must come from one goroutine.
package concentric
