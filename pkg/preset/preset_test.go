package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/logruler/pkg/errors"
	"github.com/matzehuels/logruler/pkg/ruler"
)

func TestBuiltins(t *testing.T) {
	builtins := Builtins()
	if len(builtins) == 0 {
		t.Fatal("no built-in presets")
	}

	seen := map[string]bool{}
	for _, p := range builtins {
		if err := errors.ValidatePresetName(p.Name); err != nil {
			t.Errorf("built-in name %q invalid: %v", p.Name, err)
		}
		if seen[p.Name] {
			t.Errorf("duplicate built-in name %q", p.Name)
		}
		seen[p.Name] = true

		if p.Description == "" {
			t.Errorf("built-in %q has no description", p.Name)
		}
		if err := p.Params().Validate(); err != nil {
			t.Errorf("built-in %q resolves to invalid params: %v", p.Name, err)
		}
	}

	if !seen["default"] {
		t.Error("missing the default preset")
	}
}

func TestDefaultPresetIsIdentity(t *testing.T) {
	p, err := Resolve("default", nil)
	if err != nil {
		t.Fatalf("Resolve(default) error = %v", err)
	}
	if got := p.Params(); got != ruler.Default() {
		t.Errorf("default preset params = %+v, want defaults", got)
	}
}

func TestApply(t *testing.T) {
	p := Preset{
		Marks: ptr(16),
		Color: ptr("#eee"),
	}

	got := p.Apply(ruler.Default())
	if got.Marks != 16 {
		t.Errorf("Marks = %d, want 16", got.Marks)
	}
	if got.Color != "#eee" {
		t.Errorf("Color = %q, want #eee", got.Color)
	}
	// Untouched fields inherit.
	if got.Width != 64 || got.BaselineThickness != 3 {
		t.Errorf("inherited fields changed: %+v", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")
	content := `
[presets.night]
description = "light on dark"
color = "#f0f0f0"
marks = 12

[presets.banner]
width = 256.0
margin = 16.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	presets, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("len(presets) = %d, want 2", len(presets))
	}

	// Sorted by name.
	if presets[0].Name != "banner" || presets[1].Name != "night" {
		t.Errorf("order = [%s, %s], want [banner, night]", presets[0].Name, presets[1].Name)
	}

	night := presets[1]
	if night.Description != "light on dark" {
		t.Errorf("Description = %q", night.Description)
	}
	params := night.Params()
	if params.Color != "#f0f0f0" || params.Marks != 12 {
		t.Errorf("night params = %+v", params)
	}
	if params.Width != 64 {
		t.Errorf("night Width = %g, want inherited 64", params.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error = %v, want FILE_NOT_FOUND", err)
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("[presets.x\n"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if !errors.Is(err, errors.ErrCodeInvalidPreset) {
			t.Errorf("error = %v, want INVALID_PRESET", err)
		}
	})

	t.Run("bad preset name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("[presets.BadName]\nmarks = 3\n"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if !errors.Is(err, errors.ErrCodeInvalidPreset) {
			t.Errorf("error = %v, want INVALID_PRESET", err)
		}
	})
}

func TestResolve(t *testing.T) {
	fromFile := []Preset{{Name: "dark", Description: "file override", Marks: ptr(3)}}

	// File presets shadow built-ins of the same name.
	p, err := Resolve("dark", fromFile)
	if err != nil {
		t.Fatalf("Resolve(dark) error = %v", err)
	}
	if p.Description != "file override" {
		t.Errorf("resolved %q, want the file-defined preset", p.Description)
	}

	if _, err := Resolve("dense", fromFile); err != nil {
		t.Errorf("Resolve(dense) error = %v, want built-in hit", err)
	}

	_, err = Resolve("missing", fromFile)
	if !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("error = %v, want PRESET_NOT_FOUND", err)
	}
}
