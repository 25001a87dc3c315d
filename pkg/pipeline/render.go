package pipeline

import (
	"context"
	"math"
	"time"

	"github.com/matzehuels/concentric/pkg/errors"
	"github.com/matzehuels/concentric/pkg/observability"
	"github.com/matzehuels/concentric/pkg/render"
)

// Render generates output artifacts in the requested formats. The SVG is
// rendered once and shared by the svg, png and pdf outputs.
func Render(ctx context.Context, l render.Layout, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	svgOnce := func() ([]byte, error) {
		if svg == nil {
			svg = render.RenderSVG(l, opts.SVGOptions()...)
			if svg == nil {
				return nil, errors.New(errors.ErrCodeInvalidViewport, "nothing to render: viewport is empty")
			}
		}
		return svg, nil
	}

	for _, format := range opts.Formats {
		start := time.Now()
		data, err := renderFormat(format, l, opts, svgOnce)
		observability.IO().OnRender(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(format string, l render.Layout, opts Options, svg func() ([]byte, error)) ([]byte, error) {
	switch format {
	case render.FormatSVG:
		return svg()
	case render.FormatPNG:
		data, err := svg()
		if err != nil {
			return nil, err
		}
		return render.ToPNG(data, opts.Scale)
	case render.FormatPDF:
		data, err := svg()
		if err != nil {
			return nil, err
		}
		return render.ToPDF(data)
	case render.FormatJSON:
		return render.RenderJSON(l)
	case render.FormatText:
		return RenderText(l, opts), nil
	default:
		return nil, render.ValidateFormat(format)
	}
}

// RenderText rasterises l onto a character grid of opts.CellWidth by
// opts.CellHeight units per cell.
func RenderText(l render.Layout, opts Options) []byte {
	cells := l.Scaled(opts.CellWidth, opts.CellHeight)
	w := int(math.Ceil(cells.Width()))
	h := int(math.Ceil(cells.Height()))
	if w <= 0 || h <= 0 {
		return nil
	}
	g := render.NewGrid(w, h)
	textOpts := []render.TextOption{render.WithLabels()}
	if opts.ShowTerritories {
		textOpts = append(textOpts, render.WithTerritoryOutlines())
	}
	render.RenderText(g, cells, textOpts...)
	return []byte(g.String() + "\n")
}
