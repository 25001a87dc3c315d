// Package pkg provides the core libraries for concentric, a layout engine
// that partitions a page into per-element territories, draws concentric
// rings around each element and keeps dragged elements inside their
// territory.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Geometry and algorithms ([geom], [territory], [rings], [drag])
//  2. The stateful engine ([registry], [frame], [concentric])
//  3. Surfaces around the engine ([scene], [pipeline], [render], [config])
//
// # Architecture
//
// The typical data flow for a static scene file:
//
//	scene.toml / scene.yaml / scene.json
//	         ↓
//	    [scene] package (decode + validate)
//	         ↓
//	    [concentric] engine (measure → territories → rings)
//	         ↓
//	    [render] package (SVG/PNG/PDF/JSON/text)
//
// Interactive hosts skip the scene file: they register measurers with a
// [concentric.Engine], forward pointer events and call Tick once per frame.
//
// # Quick Start
//
// Solve a scene and render it to SVG:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/concentric/pkg/concentric"
//	    "github.com/matzehuels/concentric/pkg/render"
//	    "github.com/matzehuels/concentric/pkg/scene"
//	)
//
//	s, _ := scene.Load(ctx, "page.toml")
//	res, _ := scene.Solve(ctx, s, concentric.DefaultOptions())
//	svg := render.RenderSVG(res.Layout())
//
// # Main Packages
//
//   - [geom]: rectangles, offsets and axis bounds
//   - [territory]: gap-separated regions per element category
//   - [rings]: concentric ring generation clipped to territories
//   - [drag]: pointer tracking and offset clamping
//   - [registry]: live element set and measurers
//   - [frame]: per-frame coalescing scheduler
//   - [concentric]: the engine and its immutable snapshots
//   - [scene]: declarative scene files
//   - [pipeline]: parse → layout → render orchestration
//   - [render]: SVG, raster and terminal output
//   - [config]: user settings file
//   - [errors]: coded errors shared by every package
//   - [observability]: hooks for logging and metrics
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/geom
// [territory]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/territory
// [rings]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/rings
// [drag]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/drag
// [registry]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/registry
// [frame]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/frame
// [concentric]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/concentric
// [concentric.Engine]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/concentric#Engine
// [scene]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/scene
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/render
// [config]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/concentric/pkg/observability
package pkg
