package concentric

import (
	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/registry"
)

// Metrics are the window measurements a host reports.
type Metrics struct {
	// LayoutWidth is the full window width, stable across scrollbar changes.
	LayoutWidth float64 `json:"layout_width" toml:"layout_width" yaml:"layout_width"`
	// VisibleWidth excludes the scrollbar.
	VisibleWidth float64 `json:"visible_width" toml:"visible_width" yaml:"visible_width"`
	// InnerHeight is the window height.
	InnerHeight float64 `json:"inner_height" toml:"inner_height" yaml:"inner_height"`
	ScrollX     float64 `json:"scroll_x,omitempty" toml:"scroll_x" yaml:"scroll_x,omitempty"`
	ScrollY     float64 `json:"scroll_y,omitempty" toml:"scroll_y" yaml:"scroll_y,omitempty"`
}

// ScrollbarWidth returns the width hidden behind a vertical scrollbar.
func (m Metrics) ScrollbarWidth() float64 {
	if m.VisibleWidth <= 0 || m.VisibleWidth > m.LayoutWidth {
		return 0
	}
	return m.LayoutWidth - m.VisibleWidth
}

// Host reports window metrics.
type Host interface {
	Metrics() Metrics
}

// HostFunc adapts a function to the Host interface.
type HostFunc func() Metrics

// Metrics calls f.
func (f HostFunc) Metrics() Metrics { return f() }

// StaticHost is a Host with fixed metrics.
type StaticHost Metrics

// Metrics returns h.
func (h StaticHost) Metrics() Metrics { return Metrics(h) }

// StaticMeasurer is a Measurer that always reports the same rectangle.
func StaticMeasurer(r geom.Rect) registry.Measurer {
	return registry.MeasurerFunc(func() geom.Rect { return r })
}
