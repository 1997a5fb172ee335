package ruler

import "math"

// Tick is one vertical mark on the ruler, derived from Params.
type Tick struct {
	Index     int     // 0-based position in the sequence
	X         float64 // horizontal position on the baseline
	Height    float64 // how far the tick rises above the baseline
	Thickness float64 // stroke width
}

// Endpoint reports whether the tick is the first or last of its ruler.
func (t Tick) Endpoint(marks int) bool {
	return t.Index == 0 || t.Index == marks-1
}

// Ticks computes the tick sequence for p.
//
// Positions follow ratio_i = ln(i+1)/ln(marks), so tick 0 sits exactly
// at the left margin and tick marks-1 exactly at the right margin. A
// single-mark ruler is special-cased to ratio 0: ln(1)/ln(1) is 0/0 and
// the branch keeps the degenerate input out of the logarithm.
//
// Heights and thicknesses follow the tier rule, endpoint check first so
// that an endpoint never falls through to the parity tiers.
func Ticks(p Params) []Tick {
	ticks := make([]Tick, 0, max(p.Marks, 0))

	for i := 0; i < p.Marks; i++ {
		ratio := 0.0
		if p.Marks > 1 {
			ratio = math.Log(float64(i+1)) / math.Log(float64(p.Marks))
		}

		t := Tick{
			Index: i,
			X:     p.XStart() + p.RulerWidth()*ratio,
		}

		switch {
		case i == 0 || i == p.Marks-1:
			t.Height = p.TallHeight
			t.Thickness = p.MarkThickness + 0.5
		case i%2 == 0:
			t.Height = p.MediumHeight
			t.Thickness = p.MarkThickness
		default:
			t.Height = p.ShortHeight
			t.Thickness = p.MarkThickness
		}

		ticks = append(ticks, t)
	}

	return ticks
}
