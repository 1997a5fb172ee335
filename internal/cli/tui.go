package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/logruler/pkg/errors"
	"github.com/matzehuels/logruler/pkg/preset"
)

// presetListModel is the bubbletea model for interactive preset selection.
type presetListModel struct {
	presets  []preset.Preset
	cursor   int
	selected *preset.Preset
}

// newPresetListModel creates a preset list model over the merged preset set.
func newPresetListModel(presets []preset.Preset) presetListModel {
	return presetListModel{presets: presets}
}

func (m presetListModel) Init() tea.Cmd {
	return nil
}

func (m presetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case "enter":
			p := m.presets[m.cursor]
			m.selected = &p
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m presetListModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Pick a preset") + "\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("%-10s %s", p.Name, p.Description)
		if i == m.cursor {
			b.WriteString("  " + styleSelected.Render("> "+line) + "\n")
		} else {
			b.WriteString("    " + styleValue.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + styleDim.Render("enter: select • j/k: move • q: quit") + "\n")
	return b.String()
}

// selectPreset runs the interactive picker and returns the chosen
// preset name. Quitting without a selection is an error so the caller
// does not silently fall back to defaults.
func selectPreset(fromFile []preset.Preset) (string, error) {
	m := newPresetListModel(mergePresets(fromFile))

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", fmt.Errorf("run preset picker: %w", err)
	}

	result, ok := final.(presetListModel)
	if !ok || result.selected == nil {
		return "", errors.New(errors.ErrCodeInvalidPreset, "no preset selected")
	}
	return result.selected.Name, nil
}
