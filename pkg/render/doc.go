// Package render serializes ruler geometry to output formats.
//
// Three sinks are provided:
//   - RenderSVG: the canonical text artifact, a small annotated SVG
//   - RenderPNG: in-process rasterization of the SVG via oksvg/rasterx
//   - RenderJSON: geometry export for inspection and tooling
//
// All sinks are pure functions of [ruler.Params]; file I/O belongs to
// the caller.
package render
