// Package render turns a computed layout into output documents.
//
// # Overview
//
// A [Layout] bundles a viewport with its territories, ring sets and drag
// offsets. This package renders it as:
//
//   - SVG: the ring canvas, one stroked outline per ring
//   - PNG and PDF: the SVG converted with rsvg-convert
//   - JSON: the layout itself, for external tools
//   - Text: a character raster for terminals
//
// # SVG Output
//
// [RenderSVG] draws every ring as an unfilled rectangle. The canvas spans
// the visible width and the content height of the viewport, so rings never
// extend under a scrollbar.
//
//	svg := render.RenderSVG(layout,
//	    render.WithStroke("currentColor", 1, 0.3),
//	    render.WithElements(),
//	)
//
// # SVG Options
//
//   - [WithStroke]: Ring stroke colour, width and opacity
//   - [WithElements]: Draw element boxes at their dragged positions
//   - [WithTerritories]: Outline territory bounds with a dashed stroke
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg).
//
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Terminal Output
//
// [Grid] is a fixed-size rune canvas with box-drawing helpers. [RenderText]
// rasterises a layout at one cell per unit and is what the interactive
// playground draws each frame.
package render
