package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/logruler/pkg/errors"
	"github.com/matzehuels/logruler/pkg/preset"
	"github.com/matzehuels/logruler/pkg/render"
	"github.com/matzehuels/logruler/pkg/ruler"
)

// defaultOutput is the artifact written when no --output is given.
const defaultOutput = "log_ruler_favicon.svg"

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output      string   // output file path (or base path for multiple formats)
	formats     []string // output formats: "svg", "png", "json"
	presetName  string   // named preset applied before flag overrides
	presetsFile string   // TOML preset file
	interactive bool     // pick a preset interactively
	noComments  bool     // strip annotation comments from the SVG
	scale       float64  // PNG raster scale

	marks             int
	width             float64
	height            float64
	margin            float64
	baselineY         float64
	color             string
	baselineThickness float64
	markThickness     float64
	tall              float64
	medium            float64
	short             float64
}

// newGenerateCmd creates the generate command, the main entry point of
// the tool. With no flags it reproduces the stock favicon: ten marks on
// a 64x64 canvas written to log_ruler_favicon.svg.
func newGenerateCmd() *cobra.Command {
	var formatsStr string
	opts := generateOpts{scale: 2.0}
	defaults := ruler.Default()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a ruler icon and write it to disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runGenerate(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default "+defaultOutput+")")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.presetName, "preset", "p", "", "apply a named preset before flag overrides")
	cmd.Flags().StringVar(&opts.presetsFile, "presets-file", "", "TOML file with additional presets")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick a preset interactively")
	cmd.Flags().BoolVar(&opts.noComments, "no-comments", false, "strip annotation comments from the SVG")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG raster scale factor")

	cmd.Flags().IntVar(&opts.marks, "marks", defaults.Marks, "number of tick marks, endpoints included")
	cmd.Flags().Float64Var(&opts.width, "width", defaults.Width, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", defaults.Height, "canvas height")
	cmd.Flags().Float64Var(&opts.margin, "margin", defaults.Margin, "left/right margin")
	cmd.Flags().Float64Var(&opts.baselineY, "baseline", defaults.BaselineY, "baseline y position")
	cmd.Flags().StringVar(&opts.color, "color", defaults.Color, "stroke color")
	cmd.Flags().Float64Var(&opts.baselineThickness, "baseline-thickness", defaults.BaselineThickness, "baseline stroke width")
	cmd.Flags().Float64Var(&opts.markThickness, "mark-thickness", defaults.MarkThickness, "tick stroke width")
	cmd.Flags().Float64Var(&opts.tall, "tall", defaults.TallHeight, "endpoint tick height")
	cmd.Flags().Float64Var(&opts.medium, "medium", defaults.MediumHeight, "even-index tick height")
	cmd.Flags().Float64Var(&opts.short, "short", defaults.ShortHeight, "odd-index tick height")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "json": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', or 'json')", f)
		}
	}
	return nil
}

// outputPath derives the output file for a format. A known format
// extension on the configured output is replaced, so `-o icon.svg -f
// png` writes icon.png and multiple formats fan out from one base.
func outputPath(output, format string) string {
	if output == "" {
		output = defaultOutput
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		output = strings.TrimSuffix(output, ext)
	}
	return output + "." + format
}

// runGenerate resolves the parameters and writes every requested format.
func runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	params, err := resolveParams(cmd, opts)
	if err != nil {
		return err
	}
	if err := params.Validate(); err != nil {
		return err
	}
	logger.Debugf("Rendering %d marks on a %gx%g canvas", params.Marks, params.Width, params.Height)

	var svgOpts []render.SVGOption
	if opts.noComments {
		svgOpts = append(svgOpts, render.WithoutComments())
	}

	for _, format := range opts.formats {
		prog := newProgress(logger)

		path := outputPath(opts.output, format)
		if err := errors.ValidateOutputPath(path); err != nil {
			return err
		}

		data, err := renderFormat(params, format, opts.scale, svgOpts)
		if err != nil {
			return err
		}
		logger.Debugf("Rendered %s: %d bytes", format, len(data))

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		prog.done("Generated " + path)
	}
	return nil
}

// renderFormat dispatches to the sink for the requested format.
func renderFormat(p ruler.Params, format string, scale float64, svgOpts []render.SVGOption) ([]byte, error) {
	switch format {
	case "svg":
		return render.RenderSVG(p, svgOpts...), nil
	case "png":
		return render.RenderPNG(p, render.WithScale(scale), render.WithPNGSVGOptions(svgOpts...))
	case "json":
		return render.RenderJSON(p)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// resolveParams builds the final parameter set: defaults, then the
// selected preset, then any explicitly set flags.
func resolveParams(cmd *cobra.Command, opts *generateOpts) (ruler.Params, error) {
	var filePresets []preset.Preset
	if opts.presetsFile != "" {
		var err error
		filePresets, err = preset.Load(opts.presetsFile)
		if err != nil {
			return ruler.Params{}, err
		}
	}

	name := opts.presetName
	if opts.interactive {
		selected, err := selectPreset(filePresets)
		if err != nil {
			return ruler.Params{}, err
		}
		name = selected
	}

	p := ruler.Default()
	if name != "" {
		ps, err := preset.Resolve(name, filePresets)
		if err != nil {
			return ruler.Params{}, err
		}
		p = ps.Params()
	}

	// Explicit flags win over the preset.
	f := cmd.Flags()
	if f.Changed("marks") {
		p.Marks = opts.marks
	}
	if f.Changed("width") {
		p.Width = opts.width
	}
	if f.Changed("height") {
		p.Height = opts.height
	}
	if f.Changed("margin") {
		p.Margin = opts.margin
	}
	if f.Changed("baseline") {
		p.BaselineY = opts.baselineY
	}
	if f.Changed("color") {
		p.Color = opts.color
	}
	if f.Changed("baseline-thickness") {
		p.BaselineThickness = opts.baselineThickness
	}
	if f.Changed("mark-thickness") {
		p.MarkThickness = opts.markThickness
	}
	if f.Changed("tall") {
		p.TallHeight = opts.tall
	}
	if f.Changed("medium") {
		p.MediumHeight = opts.medium
	}
	if f.Changed("short") {
		p.ShortHeight = opts.short
	}

	return p, nil
}
