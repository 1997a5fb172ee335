// Package preset provides named ruler parameter sets.
//
// A preset is a partial override of [ruler.Default]: only the fields a
// preset mentions change, everything else inherits the default. Presets
// come from two sources: the built-in table and TOML files with one
// [presets.<name>] table per preset:
//
//	[presets.dark]
//	description = "light strokes for dark backgrounds"
//	color = "#eee"
//
//	[presets.banner]
//	width = 256.0
//	margin = 16.0
//	marks = 14
package preset

import (
	"cmp"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/logruler/pkg/errors"
	"github.com/matzehuels/logruler/pkg/ruler"
)

// Preset is a named partial parameter set. Nil fields inherit from the
// base parameters when the preset is applied.
type Preset struct {
	Name        string `toml:"-"`
	Description string `toml:"description"`

	Marks             *int     `toml:"marks"`
	Width             *float64 `toml:"width"`
	Height            *float64 `toml:"height"`
	Margin            *float64 `toml:"margin"`
	BaselineY         *float64 `toml:"baseline_y"`
	Color             *string  `toml:"color"`
	BaselineThickness *float64 `toml:"baseline_thickness"`
	MarkThickness     *float64 `toml:"mark_thickness"`
	TallHeight        *float64 `toml:"tall_height"`
	MediumHeight      *float64 `toml:"medium_height"`
	ShortHeight       *float64 `toml:"short_height"`
}

// Apply returns base with the preset's non-nil fields substituted.
func (p Preset) Apply(base ruler.Params) ruler.Params {
	out := base
	if p.Marks != nil {
		out.Marks = *p.Marks
	}
	if p.Width != nil {
		out.Width = *p.Width
	}
	if p.Height != nil {
		out.Height = *p.Height
	}
	if p.Margin != nil {
		out.Margin = *p.Margin
	}
	if p.BaselineY != nil {
		out.BaselineY = *p.BaselineY
	}
	if p.Color != nil {
		out.Color = *p.Color
	}
	if p.BaselineThickness != nil {
		out.BaselineThickness = *p.BaselineThickness
	}
	if p.MarkThickness != nil {
		out.MarkThickness = *p.MarkThickness
	}
	if p.TallHeight != nil {
		out.TallHeight = *p.TallHeight
	}
	if p.MediumHeight != nil {
		out.MediumHeight = *p.MediumHeight
	}
	if p.ShortHeight != nil {
		out.ShortHeight = *p.ShortHeight
	}
	return out
}

// Params resolves the preset against the defaults.
func (p Preset) Params() ruler.Params {
	return p.Apply(ruler.Default())
}

func ptr[T any](v T) *T { return &v }

// Builtins returns the built-in presets in display order.
// The "default" preset carries no overrides.
func Builtins() []Preset {
	return []Preset{
		{Name: "default", Description: "the 64x64 favicon ruler"},
		{Name: "dark", Description: "light strokes for dark backgrounds",
			Color: ptr("#eee")},
		{Name: "dense", Description: "sixteen markings, tighter log spacing",
			Marks: ptr(16)},
		{Name: "wide", Description: "double-width banner variant",
			Width: ptr(128.0), Margin: ptr(8.0)},
		{Name: "minimal", Description: "five markings with a thin baseline",
			Marks: ptr(5), BaselineThickness: ptr(2.0)},
	}
}

// Load reads presets from a TOML file. Preset names must be valid per
// errors.ValidatePresetName; the result is sorted by name.
func Load(path string) ([]Preset, error) {
	var file struct {
		Presets map[string]Preset `toml:"presets"`
	}

	if _, err := toml.DecodeFile(path, &file); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "preset file %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "parse preset file %s", path)
	}

	presets := make([]Preset, 0, len(file.Presets))
	for name, p := range file.Presets {
		if err := errors.ValidatePresetName(name); err != nil {
			return nil, err
		}
		p.Name = name
		presets = append(presets, p)
	}

	slices.SortFunc(presets, func(a, b Preset) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return presets, nil
}

// Resolve finds a preset by name, searching file-defined presets first
// so they can shadow built-ins.
func Resolve(name string, fromFile []Preset) (Preset, error) {
	for _, p := range fromFile {
		if p.Name == name {
			return p, nil
		}
	}
	for _, p := range Builtins() {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, errors.New(errors.ErrCodePresetNotFound, "unknown preset %q", name)
}
