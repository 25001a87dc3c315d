// Package config loads user settings for the concentric CLI.
//
// Settings live in a TOML file at $XDG_CONFIG_HOME/concentric/config.toml
// (falling back to ~/.config/concentric/config.toml). A missing file is not
// an error: every field has a default, and a file only needs the keys it
// overrides.
//
//	[layout]
//	gap = 8
//	spacing = 12
//	mode = "rows"
//	content_padding = 32
//
//	[drag]
//	click_threshold = 5
//
//	[settle]
//	frames = [0, 1, 2, 3, 5, 10, 20, 30]
//	frame_interval = "16ms"
//
//	[canvas]
//	stroke_color = "currentColor"
//	stroke_width = 1
//	stroke_opacity = 0.3
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/concentric/pkg/concentric"
	"github.com/matzehuels/concentric/pkg/drag"
	"github.com/matzehuels/concentric/pkg/errors"
	"github.com/matzehuels/concentric/pkg/frame"
	"github.com/matzehuels/concentric/pkg/render"
	"github.com/matzehuels/concentric/pkg/rings"
	"github.com/matzehuels/concentric/pkg/territory"
)

const (
	appName  = "concentric"
	fileName = "config.toml"
)

// Config is the full settings file.
type Config struct {
	Layout Layout `toml:"layout"`
	Drag   Drag   `toml:"drag"`
	Settle Settle `toml:"settle"`
	Canvas Canvas `toml:"canvas"`
}

// Layout holds territory and ring settings.
type Layout struct {
	Gap            float64 `toml:"gap"`
	Spacing        float64 `toml:"spacing"`
	Mode           string  `toml:"mode"`
	ContentPadding float64 `toml:"content_padding"`
}

// Drag holds pointer settings.
type Drag struct {
	ClickThreshold float64 `toml:"click_threshold"`
}

// Settle holds the re-measure schedule after an expansion toggle.
type Settle struct {
	Frames        []int    `toml:"frames"`
	FrameInterval Duration `toml:"frame_interval"`
}

// Canvas holds ring stroke settings.
type Canvas struct {
	StrokeColor   string  `toml:"stroke_color"`
	StrokeWidth   float64 `toml:"stroke_width"`
	StrokeOpacity float64 `toml:"stroke_opacity"`
}

// Duration is a time.Duration written as a string such as "16ms".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Layout: Layout{
			Gap:            concentric.DefaultGap,
			Spacing:        rings.DefaultSpacing,
			Mode:           string(territory.ModeRows),
			ContentPadding: concentric.DefaultContentPadding,
		},
		Drag: Drag{ClickThreshold: drag.DefaultClickThreshold},
		Settle: Settle{
			Frames:        slices.Clone(frame.DefaultSettleFrames),
			FrameInterval: Duration{frame.DefaultInterval},
		},
		Canvas: Canvas{
			StrokeColor:   render.DefaultStrokeColor,
			StrokeWidth:   render.DefaultStrokeWidth,
			StrokeOpacity: render.DefaultStrokeOpacity,
		},
	}
}

// Path returns the default settings file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads settings from path, or from Path when path is empty. Keys
// absent from the file keep their defaults. A missing default file yields
// the defaults; a missing explicit path is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if explicit {
				return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
			}
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML settings over the defaults and validates them.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := territory.ParseMode(c.Layout.Mode); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout.mode")
	}
	if err := c.EngineOptions(nil).Validate(); err != nil {
		return err
	}
	if c.Settle.FrameInterval.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "settle.frame_interval must be positive, got %s", c.Settle.FrameInterval)
	}
	if c.Canvas.StrokeWidth <= 0 || math.IsNaN(c.Canvas.StrokeWidth) {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas.stroke_width must be positive, got %v", c.Canvas.StrokeWidth)
	}
	if !(c.Canvas.StrokeOpacity > 0 && c.Canvas.StrokeOpacity <= 1) {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas.stroke_opacity must be in (0, 1], got %v", c.Canvas.StrokeOpacity)
	}
	return nil
}

// Write encodes the settings as TOML.
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Save writes the settings to path, creating parent directories.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Mode returns the parsed layout mode.
func (c Config) Mode() territory.Mode {
	m, err := territory.ParseMode(c.Layout.Mode)
	if err != nil {
		return territory.ModeRows
	}
	return m
}

// TerritoryOptions returns the calculator options.
func (c Config) TerritoryOptions() territory.Options {
	return territory.Options{Gap: c.Layout.Gap, Mode: c.Mode()}
}

// EngineOptions returns engine options using logger.
func (c Config) EngineOptions(logger *log.Logger) concentric.Options {
	return concentric.Options{
		Gap:            c.Layout.Gap,
		Spacing:        c.Layout.Spacing,
		Mode:           c.Mode(),
		ContentPadding: c.Layout.ContentPadding,
		ClickThreshold: c.Drag.ClickThreshold,
		SettleFrames:   slices.Clone(c.Settle.Frames),
		Logger:         logger,
	}
}

// SVGOptions returns the ring stroke as render options.
func (c Config) SVGOptions() []render.SVGOption {
	return []render.SVGOption{
		render.WithStroke(c.Canvas.StrokeColor, c.Canvas.StrokeWidth, c.Canvas.StrokeOpacity),
	}
}
