package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/valdigraph/pkg/arc"
	"github.com/matzehuels/valdigraph/pkg/errors"
	"github.com/matzehuels/valdigraph/pkg/graph"
	"github.com/matzehuels/valdigraph/pkg/observability"
	"github.com/matzehuels/valdigraph/pkg/render"
)

// Output formats accepted by [Render].
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the action name and comment to node labels.
	// When false, only the action id is shown.
	Detailed bool

	// Labels draws the relation values at the edge ends.
	Labels bool

	// Scale is the PNG resolution factor; zero means 2.
	Scale float64
}

// ToDOT converts a renderer view to Graphviz DOT.
// The result can be rendered with [RenderSVG] or saved for external tools.
func ToDOT(v graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=\"#1f77b4\", fontcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [dir=both, fontsize=10];\n")
	buf.WriteString("\n")

	for _, n := range v.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, l := range v.Links {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", l.Source, l.Target, strings.Join(edgeAttrs(l, opts.Labels), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n graph.Node, detailed bool) []string {
	attrs := []string{fmt.Sprintf("tooltip=%q", n.FullName)}
	if !detailed {
		return append([]string{fmt.Sprintf("label=%q", n.ID)}, attrs...)
	}
	label := n.ID + "\n" + n.FullName
	if n.Comment != "" {
		label += "\n" + n.Comment
	}
	return append([]string{fmt.Sprintf("label=%q", label), "shape=box", "style=\"rounded,filled\""}, attrs...)
}

var arrows = map[arc.Marker]string{
	arc.MarkerNone:  "none",
	arc.MarkerFull:  "normal",
	arc.MarkerEmpty: "onormal",
}

func edgeAttrs(l graph.Link, labels bool) []string {
	s := l.ArcType().Style()
	attrs := []string{
		"arrowhead=" + arrows[s.Head],
		"arrowtail=" + arrows[s.Tail],
		fmt.Sprintf("color=%q", s.Color),
	}
	if s.Dashed {
		attrs = append(attrs, "style=dashed")
	}
	// r(target, source) sits at the source end, r(source, target) at the target.
	if labels {
		if l.Value2 != "" {
			attrs = append(attrs, fmt.Sprintf("taillabel=%q", l.Value2))
		}
		if l.Value != "" {
			attrs = append(attrs, fmt.Sprintf("headlabel=%q", l.Value))
		}
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the drawing scales with its
// container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// Render produces the diagram of v in the given format.
func Render(ctx context.Context, v graph.Graph, format string, opts Options) ([]byte, error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, format, len(v.Links))
	out, err := renderFormat(ctx, ToDOT(v, opts), format, opts)
	observability.Render().OnRenderComplete(ctx, format, time.Since(start), err)
	return out, err
}

func renderFormat(ctx context.Context, dot, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG, "":
		return RenderSVG(ctx, dot)
	case FormatPDF, FormatPNG:
		svg, err := RenderSVG(ctx, dot)
		if err != nil {
			return nil, err
		}
		if format == FormatPDF {
			return render.ToPDF(svg)
		}
		scale := opts.Scale
		if scale <= 0 {
			scale = 2
		}
		return render.ToPNG(svg, scale)
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown render format %q (want dot, svg, pdf or png)", format)
}

// FormatFromPath infers the render format from a file extension, defaulting
// to SVG.
func FormatFromPath(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return FormatSVG
	}
	switch ext := strings.ToLower(path[i+1:]); ext {
	case FormatDOT, "gv":
		return FormatDOT
	case FormatPDF, FormatPNG:
		return ext
	}
	return FormatSVG
}
