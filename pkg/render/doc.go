// Package render turns exported trie graphs into files and images.
//
// # Overview
//
// Rendering is a collaborator of the trie, not part of it: it consumes a
// [graph.Graph] and produces bytes in one of the supported [Format] values.
//
//   - dot: Graphviz DOT source (no Graphviz needed)
//   - json: node-link JSON from [graph.WriteJSON]
//   - svg, png: drawn in-process by the [nodelink] subpackage
//
// Use [ParseFormats] to validate user input and [Format.Ext] to name files.
package render
