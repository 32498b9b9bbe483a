// Package graph exports a trie as a rendering-agnostic node/edge graph.
//
// # Overview
//
// [Export] walks a [trie.Trie] with the same depth-first pre-order traversal
// used for prefix search and records every node and every parent→child edge
// exactly once. The result is a snapshot: later inserts into the trie do not
// change an exported [Graph].
//
// # Identifiers
//
// The root node has ID [RootID] and label [RootLabel]. Every other node's ID is
// its parent's ID followed by "_" and the rune on the edge leading to it:
//
//	root
//	root_c
//	root_c_a
//	root_c_a_t
//
// Each segment after "root" is exactly one "_" and one rune, so IDs are unique
// and decode back to the path they name.
//
// # Serialization
//
// Graphs use a node-link JSON format:
//
//	{
//	  "nodes": [{"id": "root", "label": "ROOT"}, {"id": "root_a", "label": "a", "terminal": true, "depth": 1, "word": "a"}],
//	  "edges": [{"from": "root", "to": "root_a"}]
//	}
//
// Use [WriteJSON]/[ReadJSON] for streams and [ExportJSON]/[ImportJSON] for files.
package graph
