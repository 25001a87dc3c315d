package scene

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/concentric/pkg/concentric"
	"github.com/matzehuels/concentric/pkg/errors"
	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/observability"
	"github.com/matzehuels/concentric/pkg/registry"
	"github.com/matzehuels/concentric/pkg/territory"
)

// Document formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Scene is a serialisable page description.
type Scene struct {
	Viewport concentric.Metrics     `json:"viewport" toml:"viewport" yaml:"viewport"`
	Layout   Settings               `json:"layout,omitempty" toml:"layout,omitempty" yaml:"layout,omitempty"`
	Elements []Element              `json:"elements" toml:"elements" yaml:"elements"`
	Offsets  map[string]geom.Offset `json:"offsets,omitempty" toml:"offsets,omitempty" yaml:"offsets,omitempty"`
}

// Settings override engine options for one scene. Absent fields defer to
// the caller's options; an explicit zero gap or spacing is kept.
type Settings struct {
	Gap     *float64 `json:"gap,omitempty" toml:"gap,omitempty" yaml:"gap,omitempty"`
	Spacing *float64 `json:"spacing,omitempty" toml:"spacing,omitempty" yaml:"spacing,omitempty"`
	Mode    string   `json:"mode,omitempty" toml:"mode,omitempty" yaml:"mode,omitempty"`
}

// Element is one page region.
type Element struct {
	ID       string  `json:"id" toml:"id" yaml:"id"`
	Category string  `json:"category" toml:"category" yaml:"category"`
	X        float64 `json:"x" toml:"x" yaml:"x"`
	Y        float64 `json:"y" toml:"y" yaml:"y"`
	Width    float64 `json:"width" toml:"width" yaml:"width"`
	Height   float64 `json:"height" toml:"height" yaml:"height"`
	// Pinned defaults to true for nav elements.
	Pinned   *bool `json:"pinned,omitempty" toml:"pinned,omitempty" yaml:"pinned,omitempty"`
	Expanded bool  `json:"expanded,omitempty" toml:"expanded,omitempty" yaml:"expanded,omitempty"`
}

// Rect returns the element's base rectangle.
func (e Element) Rect() geom.Rect { return geom.NewRect(e.X, e.Y, e.Width, e.Height) }

// IsPinned reports whether the element keeps viewport coordinates.
func (e Element) IsPinned(c registry.Category) bool {
	if e.Pinned != nil {
		return *e.Pinned
	}
	return c == registry.CategoryNav
}

// FormatFromPath returns the document format implied by path's extension.
func FormatFromPath(path string) (string, error) {
	if err := errors.ValidateSceneFilename(path); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, nil
	}
}

// Load reads, decodes and validates a scene file.
func Load(ctx context.Context, path string) (*Scene, error) {
	start := time.Now()
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	s, err := load(path, format)
	n := 0
	if s != nil {
		n = len(s.Elements)
	}
	observability.IO().OnSceneLoad(ctx, path, format, n, time.Since(start), err)
	return s, err
}

func load(path, format string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "scene file not found: %s", path)
		}
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses a scene document, assigns ids to anonymous elements and
// validates the result.
func Decode(data []byte, format string) (*Scene, error) {
	var s Scene
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &s)
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&s)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode %s scene", format)
	}

	for i := range s.Elements {
		if s.Elements[i].ID == "" {
			s.Elements[i].ID = uuid.NewString()
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the viewport, element ids, categories and sizes.
func (s *Scene) Validate() error {
	vp := s.Viewport
	for _, d := range []struct {
		name string
		v    float64
	}{
		{"viewport.layout_width", vp.LayoutWidth},
		{"viewport.visible_width", vp.VisibleWidth},
		{"viewport.inner_height", vp.InnerHeight},
	} {
		if err := errors.ValidateDimension(d.name, d.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidViewport, err, "invalid viewport")
		}
	}
	if vp.VisibleWidth > vp.LayoutWidth {
		return errors.New(errors.ErrCodeInvalidViewport, "visible_width %g exceeds layout_width %g", vp.VisibleWidth, vp.LayoutWidth)
	}
	if s.Layout.Mode != "" {
		if _, err := territory.ParseMode(s.Layout.Mode); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "layout.mode")
		}
	}

	seen := make(map[string]bool, len(s.Elements))
	for i, e := range s.Elements {
		if err := errors.ValidateElementID(e.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "elements[%d]", i)
		}
		if seen[e.ID] {
			return errors.New(errors.ErrCodeInvalidScene, "duplicate element id %q", e.ID)
		}
		seen[e.ID] = true
		if _, err := registry.ParseCategory(e.Category); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "element %q", e.ID)
		}
		if err := errors.ValidateDimension("width", e.Width); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "element %q", e.ID)
		}
		if err := errors.ValidateDimension("height", e.Height); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "element %q", e.ID)
		}
	}
	for id := range s.Offsets {
		if !seen[id] {
			return errors.New(errors.ErrCodeElementNotFound, "offset for unknown element %q", id)
		}
	}
	return nil
}

// Marshal encodes the scene in format.
func Marshal(s *Scene, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q", format)
	}
	return buf.Bytes(), nil
}

// Save writes the scene to path in the format implied by its extension.
func Save(s *Scene, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(s, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}
