package concentric

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/concentric/pkg/drag"
	"github.com/matzehuels/concentric/pkg/errors"
	"github.com/matzehuels/concentric/pkg/frame"
	"github.com/matzehuels/concentric/pkg/rings"
	"github.com/matzehuels/concentric/pkg/territory"
)

// Default values for engine options.
const (
	DefaultGap            = 8.0
	DefaultContentPadding = 32.0
)

// Options configures an Engine. Start from DefaultOptions and override
// fields: a zero Gap, Spacing, ContentPadding or ClickThreshold is used as
// given. Only Mode, SettleFrames and Logger fall back to defaults when
// unset.
type Options struct {
	// Gap separates adjacent territories.
	Gap float64 `json:"gap,omitempty"`

	// Spacing is the distance between consecutive rings.
	Spacing float64 `json:"spacing,omitempty"`

	// Mode selects the rows or column layout.
	Mode territory.Mode `json:"mode,omitempty"`

	// ContentPadding is added below the lowest scrolling element when
	// computing the content height.
	ContentPadding float64 `json:"content_padding,omitempty"`

	// ClickThreshold is the pointer travel below which a press counts as
	// a click.
	ClickThreshold float64 `json:"click_threshold,omitempty"`

	// SettleFrames is the re-measure schedule after an expansion toggle.
	SettleFrames []int `json:"settle_frames,omitempty"`

	// Logger receives debug output. Defaults to a discarding logger.
	Logger *log.Logger `json:"-"`
}

// DefaultOptions returns the options used by the canvas and the CLI.
func DefaultOptions() Options {
	o := Options{
		Gap:            DefaultGap,
		Spacing:        rings.DefaultSpacing,
		ContentPadding: DefaultContentPadding,
		ClickThreshold: drag.DefaultClickThreshold,
	}
	o.SetDefaults()
	return o
}

// SetDefaults fills the unset fields that have no meaningful zero value.
func (o *Options) SetDefaults() {
	if o.Mode == "" {
		o.Mode = territory.ModeRows
	}
	if o.SettleFrames == nil {
		o.SettleFrames = frame.DefaultSettleFrames
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"gap", o.Gap},
		{"spacing", o.Spacing},
		{"content_padding", o.ContentPadding},
		{"click_threshold", o.ClickThreshold},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) || c.v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be a finite non-negative number, got %v", c.name, c.v)
		}
	}
	if _, err := territory.ParseMode(string(o.Mode)); err != nil {
		return err
	}
	for _, f := range o.SettleFrames {
		if f < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "settle frames must be non-negative, got %d", f)
		}
	}
	return nil
}

func (o Options) territoryOptions() territory.Options {
	return territory.Options{Gap: o.Gap, Mode: o.Mode}
}
