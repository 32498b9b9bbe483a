// Package nodelink draws exported tries as node-link diagrams with Graphviz.
//
// # Usage
//
// Convert a graph to DOT, then render it:
//
//	g := graph.Export(t)
//	dot := nodelink.ToDOT(g, nodelink.Options{Theme: "space", WordCount: t.Len()})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # DOT Format
//
// The generated DOT uses top-to-bottom layout (rankdir=TB). The root is drawn
// as a circle labeled ROOT, terminal nodes are double circles with a check
// mark, and other nodes are plain circles labeled with their edge rune. When
// Options.Theme is set, a small header of boxes (theme, word count) is linked
// above the root.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
// No system Graphviz install is required; a failure to initialize the engine
// is returned as an error for the caller to report.
package nodelink
