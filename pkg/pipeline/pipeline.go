// Package pipeline provides the offline scene → layout → render pipeline.
//
// The pipeline consists of three stages:
//
//  1. Parse: Read a scene document from a file or from bytes
//  2. Layout: Solve territories, rings and drag offsets through the engine
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, text)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Scene:   "page.toml",
//	    Formats: []string{"svg", "txt"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/concentric/pkg/concentric"
	"github.com/matzehuels/concentric/pkg/errors"
	"github.com/matzehuels/concentric/pkg/render"
	"github.com/matzehuels/concentric/pkg/scene"
	"github.com/matzehuels/concentric/pkg/territory"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScale is the PNG pixel density.
	DefaultScale = 2.0

	// DefaultCellWidth and DefaultCellHeight are the layout units covered by
	// one character of text output. Cells are roughly twice as tall as wide.
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Parse options. Scene is a file path; SceneData, when set, is decoded
	// as SceneFormat instead of reading a file.
	Scene       string `json:"scene,omitempty"`
	SceneData   []byte `json:"-"`
	SceneFormat string `json:"scene_format,omitempty"`

	// Layout options. Nil values use the engine defaults; scene settings
	// take precedence over both.
	Gap            *float64       `json:"gap,omitempty"`
	Spacing        *float64       `json:"spacing,omitempty"`
	Mode           territory.Mode `json:"mode,omitempty"`
	ContentPadding *float64       `json:"content_padding,omitempty"`

	// Render options
	Formats         []string `json:"formats,omitempty"`
	StrokeColor     string   `json:"stroke_color,omitempty"`
	StrokeWidth     float64  `json:"stroke_width,omitempty"`
	StrokeOpacity   float64  `json:"stroke_opacity,omitempty"`
	ShowElements    bool     `json:"show_elements,omitempty"`
	ShowTerritories bool     `json:"show_territories,omitempty"`
	Scale           float64  `json:"scale,omitempty"`
	CellWidth       float64  `json:"cell_width,omitempty"`
	CellHeight      float64  `json:"cell_height,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the parsed scene.
	Scene *scene.Scene

	// Layout is the solved layout.
	Layout *scene.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount   int
	TerritoryCount int
	RingCount      int
	ParseTime      time.Duration
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := render.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateForParse checks that a scene source is given.
func (o *Options) ValidateForParse() error {
	if o.Scene == "" && len(o.SceneData) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scene or scene data is required")
	}
	if len(o.SceneData) > 0 && o.SceneFormat == "" {
		if o.Scene == "" {
			return errors.New(errors.ErrCodeInvalidInput, "scene_format is required with scene data")
		}
		format, err := scene.FormatFromPath(o.Scene)
		if err != nil {
			return err
		}
		o.SceneFormat = format
	}
	o.setLogger()
	return nil
}

// ValidateForLayout checks layout options.
func (o *Options) ValidateForLayout() error {
	o.setLogger()
	return o.EngineOptions().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.CellWidth == 0 {
		o.CellWidth = DefaultCellWidth
	}
	if o.CellHeight == 0 {
		o.CellHeight = DefaultCellHeight
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	checks := []struct {
		name string
		v    float64
	}{
		{"scale", o.Scale},
		{"cell_width", o.CellWidth},
		{"cell_height", o.CellHeight},
	}
	for _, c := range checks {
		if !(c.v > 0) || math.IsInf(c.v, 0) {
			return errors.New(errors.ErrCodeInvalidInput, "%s must be a positive number (got %g)", c.name, c.v)
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline.
func (o *Options) ValidateAndSetDefaults() error {
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// EngineOptions returns the engine configuration for the layout stage.
func (o *Options) EngineOptions() concentric.Options {
	opts := concentric.DefaultOptions()
	if o.Gap != nil {
		opts.Gap = *o.Gap
	}
	if o.Spacing != nil {
		opts.Spacing = *o.Spacing
	}
	if o.ContentPadding != nil {
		opts.ContentPadding = *o.ContentPadding
	}
	if o.Mode != "" {
		opts.Mode = o.Mode
	}
	opts.Logger = o.Logger
	return opts
}

// Ptr returns a pointer to v, for the optional layout fields of Options.
func Ptr[T any](v T) *T { return &v }

// SVGOptions returns renderer options for the SVG-based formats.
func (o *Options) SVGOptions() []render.SVGOption {
	var opts []render.SVGOption
	if o.StrokeColor != "" || o.StrokeWidth != 0 || o.StrokeOpacity != 0 {
		opts = append(opts, render.WithStroke(o.StrokeColor, o.StrokeWidth, o.StrokeOpacity))
	}
	if o.ShowElements {
		opts = append(opts, render.WithElements())
	}
	if o.ShowTerritories {
		opts = append(opts, render.WithTerritories())
	}
	return opts
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
