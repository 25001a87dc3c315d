package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// maxElementIDLength bounds caller-assigned element ids.
const maxElementIDLength = 128

// ValidateElementID validates a caller-assigned element id.
//
// Ids end up as SVG attribute values and map keys, so the rules are:
//   - No empty ids
//   - No control characters or whitespace
//   - No quotes or angle brackets
//   - Maximum length of 128 characters
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "element id cannot be empty")
	}

	if len(id) > maxElementIDLength {
		return New(ErrCodeInvalidInput, "element id too long (max %d characters)", maxElementIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "element id %q contains whitespace or control characters", id)
		}
	}

	if strings.ContainsAny(id, `"'<>&`) {
		return New(ErrCodeInvalidInput, "element id %q contains markup characters", id)
	}

	return nil
}

// ValidateDimension validates a finite, non-negative length such as a
// viewport width or a rectangle height.
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s cannot be negative (got %g)", name, v)
	}
	return nil
}

// ValidateSceneFilename validates a scene filename by extension.
// Supported extensions are .toml, .yaml, .yml and .json.
func ValidateSceneFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidScene, "scene filename cannot be empty")
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml", ".yaml", ".yml", ".json":
		return nil
	default:
		return New(ErrCodeInvalidFormat, "unsupported scene file extension %q (use .toml, .yaml, .yml or .json)", filepath.Ext(filename))
	}
}

// ValidatePath validates an output path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
