package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/logruler/pkg/ruler"
)

type document struct {
	Params   params    `json:"params"`
	Baseline segment   `json:"baseline"`
	Ticks    []tick    `json:"ticks"`
}

type params struct {
	Marks             int     `json:"marks"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	Margin            float64 `json:"margin"`
	BaselineY         float64 `json:"baseline_y"`
	Color             string  `json:"color"`
	BaselineThickness float64 `json:"baseline_thickness"`
	MarkThickness     float64 `json:"mark_thickness"`
	TallHeight        float64 `json:"tall_height"`
	MediumHeight      float64 `json:"medium_height"`
	ShortHeight       float64 `json:"short_height"`
}

type segment struct {
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Thickness float64 `json:"thickness"`
}

type tick struct {
	Index     int     `json:"index"`
	X         float64 `json:"x"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
	Endpoint  bool    `json:"endpoint,omitempty"`
}

// RenderJSON encodes the ruler geometry as indented JSON: the input
// parameters, the baseline segment, and every computed tick. The format
// is meant for inspection and downstream tooling, not re-import.
func RenderJSON(p ruler.Params) ([]byte, error) {
	out := document{
		Params: params{
			Marks:             p.Marks,
			Width:             p.Width,
			Height:            p.Height,
			Margin:            p.Margin,
			BaselineY:         p.BaselineY,
			Color:             p.Color,
			BaselineThickness: p.BaselineThickness,
			MarkThickness:     p.MarkThickness,
			TallHeight:        p.TallHeight,
			MediumHeight:      p.MediumHeight,
			ShortHeight:       p.ShortHeight,
		},
		Baseline: segment{
			X1: p.XStart(), Y1: p.BaselineY,
			X2: p.XEnd(), Y2: p.BaselineY,
			Thickness: p.BaselineThickness,
		},
	}

	ticks := ruler.Ticks(p)
	out.Ticks = make([]tick, len(ticks))
	for i, t := range ticks {
		out.Ticks[i] = tick{
			Index:     t.Index,
			X:         t.X,
			Height:    t.Height,
			Thickness: t.Thickness,
			Endpoint:  t.Endpoint(p.Marks),
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return buf.Bytes(), nil
}
