package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wordtrie/pkg/graph"
)

const (
	themeNodeID = "__theme__"
	countNodeID = "__count__"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Theme adds a "Theme: ..." header box above the root when non-empty.
	Theme string
	// WordCount is shown in a second header box when Theme is set.
	WordCount int
}

// ToDOT converts an exported trie graph to Graphviz DOT source.
// Nodes and edges are written in the graph's traversal order.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Trie {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n")
	buf.WriteString("\n")

	if opts.Theme != "" && len(g.Nodes) > 0 {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=box, style=filled, fillcolor=lightblue];\n",
			themeNodeID, "Theme: "+opts.Theme)
		fmt.Fprintf(&buf, "  %q [label=%q, shape=box, style=filled, fillcolor=lightyellow];\n",
			countNodeID, fmt.Sprintf("Words: %d", opts.WordCount))
		fmt.Fprintf(&buf, "  %q -> %q;\n", themeNodeID, countNodeID)
		fmt.Fprintf(&buf, "  %q -> %q;\n", countNodeID, g.Nodes[0].ID)
		buf.WriteString("\n")
	}

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n graph.Node) []string {
	attrs := []string{fmt.Sprintf("label=%q", n.Display())}
	switch {
	case n.Depth == 0 && n.ID == graph.RootID:
		attrs = append(attrs, "fillcolor=lightgrey")
	case n.Terminal:
		attrs = append(attrs, "shape=doublecircle", "fillcolor=palegreen")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders DOT source to a PNG image using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing starts at the
// origin and carries explicit pixel dimensions.
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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
