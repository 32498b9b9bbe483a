package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtrie/pkg/errors"
	"github.com/matzehuels/wordtrie/pkg/graph"
	"github.com/matzehuels/wordtrie/pkg/render"
	"github.com/matzehuels/wordtrie/pkg/render/nodelink"
	"github.com/matzehuels/wordtrie/pkg/words"
)

// stdoutPath selects standard output instead of a file.
const stdoutPath = "-"

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	source  sourceFlags
	output  string // output file (single format) or base path
	formats string // comma-separated render formats
	prefix  string // export only this subtree
}

// graphCommand creates the command that exports the trie as a graph.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [theme]",
		Short: "Export the trie as DOT, JSON, SVG or PNG",
		Long: `Build a trie from the theme's word list and export it as a node-link graph.
SVG and PNG are rendered in-process with Graphviz; if rendering fails the
format is skipped with a warning.`,
		Example: `  wordtrie graph space
  wordtrie graph fantasy -f dot,json -o trie
  wordtrie graph music --prefix h -f dot -o -`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeThemeArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, firstArg(args), &opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, dot, json (comma-separated; default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or base path, - for stdout (default from config)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "export only the subtree under this prefix")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, theme string, opts *graphOpts) error {
	ctx := cmd.Context()
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if opts.formats == "" {
		opts.formats = cfg.Render.Format
	}
	if opts.output == "" {
		opts.output = cfg.Render.Output
	}
	formats, err := render.ParseFormats(opts.formats)
	if err != nil {
		return err
	}
	if opts.output == stdoutPath && len(formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "cannot write %d formats to stdout", len(formats))
	}

	res, err := c.loadWords(ctx, theme, opts.source)
	if err != nil {
		return err
	}
	t := buildTrie(res.Words)
	prefix := words.Fold(opts.prefix)

	g := graph.Export(t,
		graph.WithPrefix(prefix),
		graph.WithMeta("theme", res.Theme),
		graph.WithMeta("origin", string(res.Origin)),
		graph.WithMeta("words", t.Len()))
	if g.NodeCount() == 0 {
		return errors.New(errors.ErrCodeNotFound, "no words start with %q", prefix)
	}
	printStats(t.Len(), t.NodeCount(), res.Origin)

	dotOpts := nodelink.Options{Theme: res.Theme, WordCount: t.Len()}
	base := basePath(opts.output)
	written := 0
	for _, f := range formats {
		prog := newProgress(c.Logger)
		data, err := renderGraph(ctx, g, f, dotOpts)
		if err != nil {
			if f.NeedsGraphviz() && ctx.Err() == nil {
				printWarning("Skipping %s: %v", f, err)
				continue
			}
			return fmt.Errorf("render %s: %w", f, err)
		}
		prog.done("rendered " + string(f))

		if opts.output == stdoutPath {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		path := outputPath(opts.output, base, f, len(formats))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		if written == 0 {
			printSuccess("Exported trie graph")
		}
		printFile(path)
		written++
	}

	if written == 0 {
		printWarning("No output written")
	} else if !slices.Contains(formats, render.FormatSVG) {
		printNextStep("Render as SVG", fmt.Sprintf("%s graph %s -f svg", appName, res.Theme))
	}
	return nil
}

// renderGraph produces the bytes for one output format.
func renderGraph(ctx context.Context, g *graph.Graph, f render.Format, opts nodelink.Options) ([]byte, error) {
	switch f {
	case render.FormatJSON:
		var buf bytes.Buffer
		if err := graph.WriteJSON(g, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case render.FormatDOT:
		return []byte(nodelink.ToDOT(g, opts)), nil
	case render.FormatSVG:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(g, opts))
	case render.FormatPNG:
		return nodelink.RenderPNG(ctx, nodelink.ToDOT(g, opts))
	default:
		return nil, fmt.Errorf("unknown format: %s", f)
	}
}

// basePath strips a known format extension from output, so "trie.svg" and
// "trie" both yield "trie".
func basePath(output string) string {
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil && ext != "" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath picks the file for format f. A single format written to a path
// that already carries an extension keeps that path as given.
func outputPath(output, base string, f render.Format, formats int) string {
	if formats == 1 && filepath.Ext(output) != "" {
		return output
	}
	return base + f.Ext()
}
