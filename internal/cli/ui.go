package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the presets listing and the interactive picker.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary accents
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleName for preset names.
	styleName = lipgloss.NewStyle().Foreground(colorCyan)

	// styleValue for parameter values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleSelected for the highlighted row in the interactive picker.
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)
