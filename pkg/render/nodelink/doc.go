// Package nodelink renders valued digraphs as node-link diagrams.
//
// # Overview
//
// Actions become circles and classified arcs become edges drawn with the
// marker table of package arc: full arrowheads for strong directions, empty
// ones for median directions, dashed lines where a direction lies below
// the median, and red undecorated lines for initialization arcs. The
// two-decimal relation values label the edge ends.
//
// # Usage
//
// Build the renderer view, convert it to DOT, then render:
//
//	v := graph.Build(g, digraph.General, false)
//	dot := nodelink.ToDOT(v, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [Render] wraps the steps for every output format.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
