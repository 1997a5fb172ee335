// Package ruler computes the geometry of a log-spaced ruler icon.
//
// A ruler icon is a horizontal baseline with a sequence of vertical tick
// marks rising from it. Tick positions follow a logarithmic progression
// across the baseline: the normalized position of tick i out of n is
// ln(i+1)/ln(n), which places the first tick at the left margin, the
// last at the right margin, and compresses the spacing toward the
// high-index end.
//
// Tick visual weight is assigned by a tier rule: the two endpoint ticks
// are tall and slightly thicker, interior ticks alternate between the
// medium (even index) and short (odd index) tiers.
//
// The package is pure computation. Serialization to SVG, PNG, or JSON
// lives in pkg/render.
package ruler
