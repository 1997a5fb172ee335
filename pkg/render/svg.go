package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/logruler/pkg/ruler"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	comments bool
}

// WithoutComments drops the annotation comments and separator blank
// lines from the output. Useful when the icon ships as a favicon and
// every byte counts; the elements themselves are unchanged.
func WithoutComments() SVGOption {
	return func(r *svgRenderer) { r.comments = false }
}

// RenderSVG renders the ruler described by p as an SVG document.
//
// The document is a root <svg> with a 0,0,width,height view box, one
// <line> for the baseline spanning the margins at BaselineY, and one
// <line> per tick rising from the baseline to BaselineY-height. Tick x
// positions are written with one decimal digit; all other numbers print
// in shortest form. Lines are joined by newlines with no trailing
// newline.
func RenderSVG(p ruler.Params, opts ...SVGOption) []byte {
	r := svgRenderer{comments: true}
	for _, opt := range opts {
		opt(&r)
	}

	lines := make([]string, 0, 3*p.Marks+6)
	lines = append(lines, fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`,
		num(p.Width), num(p.Height)))

	if r.comments {
		lines = append(lines, "  <!-- Horizontal baseline -->")
	}
	lines = append(lines, fmt.Sprintf(`  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`,
		num(p.XStart()), num(p.BaselineY), num(p.XEnd()), num(p.BaselineY), p.Color, num(p.BaselineThickness)))
	if r.comments {
		lines = append(lines, "", "  <!-- Log-spaced markings -->")
	}

	for _, t := range ruler.Ticks(p) {
		if r.comments {
			lines = append(lines, fmt.Sprintf("  <!-- Mark %d: x≈%.1f -->", t.Index, t.X))
		}
		lines = append(lines, fmt.Sprintf(`  <line x1="%.1f" y1="%s" x2="%.1f" y2="%s" stroke="%s" stroke-width="%s"/>`,
			t.X, num(p.BaselineY), t.X, num(p.BaselineY-t.Height), p.Color, num(t.Thickness)))
		if r.comments {
			lines = append(lines, "")
		}
	}

	lines = append(lines, "</svg>")
	return []byte(strings.Join(lines, "\n"))
}

// num formats v in shortest decimal form, so whole values print without
// a decimal point (5, not 5.0) and 2.5 stays 2.5.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
