package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/logruler/pkg/preset"
)

// newPresetsCmd creates the presets command for listing parameter presets.
func newPresetsCmd() *cobra.Command {
	var presetsFile string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available parameter presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var fromFile []preset.Preset
			if presetsFile != "" {
				var err error
				fromFile, err = preset.Load(presetsFile)
				if err != nil {
					return err
				}
			}

			fmt.Println(styleTitle.Render("Presets"))
			for _, p := range mergePresets(fromFile) {
				params := p.Params()
				summary := fmt.Sprintf("%d marks, %gx%g, %s", params.Marks, params.Width, params.Height, params.Color)
				fmt.Printf("  %s  %s\n", styleName.Render(fmt.Sprintf("%-10s", p.Name)), styleValue.Render(summary))
				if p.Description != "" {
					fmt.Printf("  %s  %s\n", fmt.Sprintf("%-10s", ""), styleDim.Render(p.Description))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&presetsFile, "presets-file", "", "TOML file with additional presets")
	return cmd
}

// mergePresets combines file-defined presets with the built-ins.
// File presets come first and shadow built-ins of the same name.
func mergePresets(fromFile []preset.Preset) []preset.Preset {
	merged := make([]preset.Preset, 0, len(fromFile)+len(preset.Builtins()))
	seen := map[string]bool{}
	for _, p := range fromFile {
		merged = append(merged, p)
		seen[p.Name] = true
	}
	for _, p := range preset.Builtins() {
		if !seen[p.Name] {
			merged = append(merged, p)
		}
	}
	return merged
}
