package render

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	"github.com/matzehuels/concentric/pkg/buildinfo"
	"github.com/matzehuels/concentric/pkg/geom"
)

// Default ring stroke, matching the decorative canvas.
const (
	DefaultStrokeColor   = "currentColor"
	DefaultStrokeWidth   = 1.0
	DefaultStrokeOpacity = 0.3
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	color       string
	width       float64
	opacity     float64
	elements    bool
	territories bool
}

// WithStroke sets the ring stroke. Zero width or opacity keep the default.
func WithStroke(color string, width, opacity float64) SVGOption {
	return func(r *svgRenderer) {
		if color != "" {
			r.color = color
		}
		if width > 0 {
			r.width = width
		}
		if opacity > 0 {
			r.opacity = opacity
		}
	}
}

// WithElements draws each element box translated by its drag offset.
func WithElements() SVGOption { return func(r *svgRenderer) { r.elements = true } }

// WithTerritories outlines each territory with a dashed stroke.
func WithTerritories() SVGOption { return func(r *svgRenderer) { r.territories = true } }

// RenderSVG draws the ring canvas. An empty layout renders to nil.
func RenderSVG(l Layout, opts ...SVGOption) []byte {
	if l.Viewport.IsZero() {
		return nil
	}
	r := svgRenderer{color: DefaultStrokeColor, width: DefaultStrokeWidth, opacity: DefaultStrokeOpacity}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := num(l.Width()), num(l.Height())
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, "  <!-- concentric %s -->\n", buildinfo.Get().Version)

	fmt.Fprintf(&buf, `  <g class="rings" fill="none" stroke="%s" stroke-width="%s" stroke-opacity="%s">`+"\n",
		html.EscapeString(r.color), num(r.width), num(r.opacity))
	for _, set := range l.Rings {
		fmt.Fprintf(&buf, `    <g id="rings-%s" data-category="%s">`+"\n", html.EscapeString(set.ID), set.Category)
		for _, ring := range set.Rings {
			if ring.IsEmpty() {
				continue
			}
			writeRect(&buf, "      ", ring, "")
		}
		buf.WriteString("    </g>\n")
	}
	buf.WriteString("  </g>\n")

	if r.territories {
		fmt.Fprintf(&buf, `  <g class="territories" fill="none" stroke="%s" stroke-width="%s" stroke-dasharray="4 4">`+"\n",
			html.EscapeString(r.color), num(r.width))
		for _, t := range l.Territories {
			writeRect(&buf, "    ", t.TerritoryBounds.Rect(), t.ID)
		}
		buf.WriteString("  </g>\n")
	}

	if r.elements {
		fmt.Fprintf(&buf, `  <g class="elements" fill="none" stroke="%s" stroke-width="%s">`+"\n",
			html.EscapeString(r.color), num(r.width*2))
		for _, t := range l.Territories {
			writeRect(&buf, "    ", t.ElementBounds.Translate(l.Offsets[t.ID]), t.ID)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeRect(buf *bytes.Buffer, indent string, r geom.Rect, id string) {
	buf.WriteString(indent)
	fmt.Fprintf(buf, `<rect x="%s" y="%s" width="%s" height="%s"`, num(r.X), num(r.Y), num(r.Width), num(r.Height))
	if id != "" {
		fmt.Fprintf(buf, ` data-id="%s"`, html.EscapeString(id))
	}
	buf.WriteString("/>\n")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
