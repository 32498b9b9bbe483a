// Package trie indexes words by character sequence for prefix completion.
//
// # Overview
//
// A [Trie] is a tree whose edges are labeled with single runes. Every
// root-to-node path spells a prefix of some inserted word, and nodes at which a
// word ends exactly are terminal. Terminal nodes keep the word they complete so
// results need no path reconstruction.
//
// # Ordering
//
// Children are visited in the order they were first inserted. Both
// [Trie.SearchPrefix] and [Trie.Walk] use the same depth-first pre-order
// traversal, so results are reproducible for a given insertion sequence:
//
//	t := trie.New()
//	t.Insert("cat", "car", "cart", "dog")
//	t.SearchPrefix("ca") // [cat car cart]
//
// # Characters
//
// Keys are the runes a string decodes to. Any rune is accepted and compared
// exactly; the trie applies no case folding or normalization. Callers that want
// case-insensitive lookup must fold words and prefixes the same way before
// calling Insert and SearchPrefix.
//
// Each invalid UTF-8 byte decodes to U+FFFD, so "\xff" and "\xfe" are the same
// key. Insert records such a word with the replacement runes in place, which
// keeps every stored word equal to the path that spells it, and lookups fold
// the prefix the same way.
//
// # Concurrency
//
// A Trie may be shared between goroutines. Insert takes an exclusive lock;
// SearchPrefix, Contains, Len, NodeCount and Walk share a read lock. Walk
// copies the subtree under that lock and calls its [WalkFunc] after releasing
// it, so the callback may use the trie freely.
package trie
