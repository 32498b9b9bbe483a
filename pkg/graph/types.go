package graph

import (
	"errors"
	"fmt"
)

const (
	// RootID is the identifier of the node the export starts at.
	RootID = "root"

	// RootLabel is the sentinel label of the root node, which has no
	// incoming edge character.
	RootLabel = "ROOT"

	// TerminalMark is appended to display labels of terminal nodes.
	TerminalMark = "✓"

	idSeparator = "_"
)

var (
	// ErrEmptyGraph is returned by [Graph.Validate] when the graph has no root.
	ErrEmptyGraph = errors.New("graph has no nodes")

	// ErrDuplicateNodeID is returned by [Graph.Validate] when two nodes share an ID.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownEndpoint is returned by [Graph.Validate] when an edge refers to a
	// node that is not in the graph.
	ErrUnknownEndpoint = errors.New("edge endpoint not in graph")

	// ErrNotTree is returned by [Graph.Validate] when the edge count is not one
	// less than the node count, or a node has more than one parent.
	ErrNotTree = errors.New("graph is not a tree")
)

// Metadata stores graph-level key-value pairs such as the word theme.
type Metadata map[string]any

// Node is one trie node in an exported graph.
type Node struct {
	ID       string `json:"id"`
	Label    string `json:"label"`              // Edge rune leading here, or RootLabel
	Terminal bool   `json:"terminal,omitempty"` // A word ends at this node
	Depth    int    `json:"depth,omitempty"`    // Distance from the export root
	Word     string `json:"word,omitempty"`     // Stored word when Terminal
}

// Display returns the label annotated with [TerminalMark] for terminal nodes.
func (n Node) Display() string {
	if n.Terminal {
		return n.Label + " " + TerminalMark
	}
	return n.Label
}

// Edge is a directed parent→child link between two node IDs.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is an ordered node and edge enumeration of a trie.
// Nodes and edges appear in traversal order; Nodes[0] is the root.
type Graph struct {
	Nodes []Node   `json:"nodes"`
	Edges []Edge   `json:"edges"`
	Meta  Metadata `json:"meta,omitempty"`
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Words returns the stored words of terminal nodes in traversal order.
func (g *Graph) Words() []string {
	words := []string{}
	for _, n := range g.Nodes {
		if n.Terminal {
			words = append(words, n.Word)
		}
	}
	return words
}

// Validate checks the tree shape of the graph: at least one node, unique IDs,
// edges between known nodes, exactly N-1 edges and at most one parent per node.
func (g *Graph) Validate() error {
	if len(g.Nodes) == 0 {
		return ErrEmptyGraph
	}
	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if ids[n.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
		}
		ids[n.ID] = true
	}
	if len(g.Edges) != len(g.Nodes)-1 {
		return fmt.Errorf("%w: %d nodes, %d edges", ErrNotTree, len(g.Nodes), len(g.Edges))
	}
	parents := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		if !ids[e.From] {
			return fmt.Errorf("%w: %s", ErrUnknownEndpoint, e.From)
		}
		if !ids[e.To] {
			return fmt.Errorf("%w: %s", ErrUnknownEndpoint, e.To)
		}
		if parents[e.To] {
			return fmt.Errorf("%w: %s has several parents", ErrNotTree, e.To)
		}
		parents[e.To] = true
	}
	return nil
}
