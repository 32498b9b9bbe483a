package graph

import "github.com/matzehuels/wordtrie/pkg/trie"

type exportConfig struct {
	prefix string
	meta   Metadata
}

// Option configures [Export].
type Option func(*exportConfig)

// WithPrefix limits the export to the subtree reached by prefix. The prefix
// node becomes the root record with [RootID] and [RootLabel]. A prefix that is
// not in the trie yields an empty graph.
func WithPrefix(prefix string) Option {
	return func(c *exportConfig) { c.prefix = prefix }
}

// WithMeta attaches a graph-level metadata entry.
func WithMeta(key string, value any) Option {
	return func(c *exportConfig) {
		if c.meta == nil {
			c.meta = Metadata{}
		}
		c.meta[key] = value
	}
}

// Export walks t and returns its nodes and edges. Every node reachable from the
// export root is emitted once, and every parent→child edge once, so a trie with
// N nodes yields N node records and N-1 edge records.
func Export(t *trie.Trie, opts ...Option) *Graph {
	cfg := exportConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{Nodes: []Node{}, Edges: []Edge{}, Meta: cfg.meta}

	// ids[d] is the ID of the most recent node at depth d. Pre-order guarantees
	// it is the parent of the next node at depth d+1.
	var ids []string
	t.Walk(cfg.prefix, func(v trie.Visit) bool {
		n := Node{
			Depth:    v.Depth,
			Terminal: v.Terminal,
			Word:     v.Word,
		}
		if v.Depth == 0 {
			n.ID, n.Label = RootID, RootLabel
		} else {
			parent := ids[v.Depth-1]
			n.ID = parent + idSeparator + string(v.Char)
			n.Label = string(v.Char)
			g.Edges = append(g.Edges, Edge{From: parent, To: n.ID})
		}
		ids = append(ids[:v.Depth], n.ID)
		g.Nodes = append(g.Nodes, n)
		return true
	})
	return g
}
