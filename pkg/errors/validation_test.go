package errors

import (
	"strings"
	"testing"
)

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{"short hex", "#333", false},
		{"long hex", "#336699", false},
		{"hex with alpha", "#33669980", false},
		{"keyword", "black", false},
		{"mixed case keyword", "DarkSlateGray", false},
		{"empty", "", true},
		{"bad hex digits", "#33z", true},
		{"hex wrong length", "#3366", true},
		{"script injection", `#333" onload="x`, true},
		{"spaces", "dark gray", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.color)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColor(%q) error = %v, wantErr %v", tt.color, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateColor(%q) code = %v, want %v", tt.color, GetCode(err), ErrCodeInvalidColor)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "log_ruler_favicon.svg", false},
		{"nested path", "out/icons/favicon.svg", false},
		{"absolute path", "/tmp/favicon.svg", false},
		{"empty", "", true},
		{"null byte", "favicon\x00.svg", true},
		{"control character", "favicon\n.svg", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePresetName(t *testing.T) {
	tests := []struct {
		name    string
		preset  string
		wantErr bool
	}{
		{"simple", "default", false},
		{"with dash", "dense-dark", false},
		{"with digits", "wide16", false},
		{"empty", "", true},
		{"uppercase", "Default", true},
		{"leading dash", "-dark", true},
		{"path separator", "a/b", true},
		{"too long", strings.Repeat("x", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePresetName(tt.preset)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePresetName(%q) error = %v, wantErr %v", tt.preset, err, tt.wantErr)
			}
		})
	}
}
