package ruler

import "github.com/matzehuels/logruler/pkg/errors"

// Params holds the geometry and style inputs for one ruler icon.
// All lengths and coordinates are in SVG user units.
type Params struct {
	Marks             int     // number of tick marks, endpoints included
	Width             float64 // canvas width
	Height            float64 // canvas height
	Margin            float64 // left/right margin between canvas edge and baseline ends
	BaselineY         float64 // y position of the horizontal baseline
	Color             string  // stroke color for baseline and ticks
	BaselineThickness float64 // stroke width of the baseline
	MarkThickness     float64 // base stroke width of interior ticks
	TallHeight        float64 // endpoint tier height
	MediumHeight      float64 // even-index tier height
	ShortHeight       float64 // odd-index tier height
}

// Default returns the favicon parameter set: ten marks on a 64x64
// canvas, dark gray stroke, baseline near the bottom edge.
func Default() Params {
	return Params{
		Marks:             10,
		Width:             64,
		Height:            64,
		Margin:            5,
		BaselineY:         55,
		Color:             "#333",
		BaselineThickness: 3,
		MarkThickness:     2,
		TallHeight:        40,
		MediumHeight:      30,
		ShortHeight:       20,
	}
}

// XStart returns the x coordinate of the baseline's left end.
func (p Params) XStart() float64 { return p.Margin }

// XEnd returns the x coordinate of the baseline's right end.
func (p Params) XEnd() float64 { return p.Width - p.Margin }

// RulerWidth returns the usable baseline length between the margins.
func (p Params) RulerWidth() float64 { return p.XEnd() - p.XStart() }

// Validate checks the parameters for geometric consistency.
// It rejects inputs where the marks would collapse or invert; every
// well-formed parameter set (including the defaults) passes unchanged.
func (p Params) Validate() error {
	if p.Marks < 1 {
		return errors.New(errors.ErrCodeInvalidParams, "marks must be >= 1, got %d", p.Marks)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidParams, "canvas dimensions must be positive, got %gx%g", p.Width, p.Height)
	}
	if p.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidParams, "margin cannot be negative, got %g", p.Margin)
	}
	if p.Margin*2 >= p.Width {
		return errors.New(errors.ErrCodeInvalidParams, "margin %g leaves no room on a %g-wide canvas", p.Margin, p.Width)
	}
	if err := errors.ValidateColor(p.Color); err != nil {
		return err
	}
	return nil
}
