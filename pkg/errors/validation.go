package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// colorRegex matches hex colors (#rgb, #rrggbb, #rrggbbaa) and plain CSS
// color keywords (letters only).
var colorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3}([0-9a-fA-F]{3})?([0-9a-fA-F]{2})?|[a-zA-Z]+)$`)

// ValidateColor validates a stroke color value.
// It accepts hex notation and CSS color keywords, which is what the SVG
// output embeds verbatim into stroke attributes.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if !colorRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid color: %q", color)
	}
	return nil
}

// ValidateOutputPath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// presetNameRegex matches valid preset names.
var presetNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidatePresetName validates a preset name.
// Names are lowercase identifiers safe to use as TOML table keys and
// query parameter values.
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidPreset, "preset name too long (max 64 characters)")
	}

	if strings.ToLower(name) != name {
		return New(ErrCodeInvalidPreset, "preset names must be lowercase: %q", name)
	}

	if !presetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPreset, "invalid preset name: %q", name)
	}

	return nil
}
