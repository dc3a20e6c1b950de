// Package render provides output rendering for valued digraphs.
//
// The [nodelink] subpackage draws the renderer view of a digraph as a
// Graphviz node-link diagram. This package holds the format conversion
// shared by renderers.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/valdigraph/pkg/render/nodelink
package render
