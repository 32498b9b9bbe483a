package trie

import (
	"sync"
	"unicode/utf8"
)

// node is a trie vertex. order records child keys in first-insertion order so
// traversal does not depend on map iteration.
type node struct {
	children map[rune]*node
	order    []rune
	terminal bool
	word     string
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// child returns the child under r, creating it if missing.
func (n *node) child(r rune) (*node, bool) {
	if c, ok := n.children[r]; ok {
		return c, false
	}
	c := newNode()
	n.children[r] = c
	n.order = append(n.order, r)
	return c, true
}

// Trie stores words for prefix completion.
//
// The zero value is not usable; create tries with [New].
type Trie struct {
	mu    sync.RWMutex
	root  *node
	words int
	nodes int
}

// New creates an empty trie containing only the root node.
func New() *Trie {
	return &Trie{root: newNode(), nodes: 1}
}

// Insert adds words to the trie. Inserting a word that is already present has
// no effect, and the empty string marks the root as terminal. Each invalid
// UTF-8 byte is stored as U+FFFD, the rune it decodes to.
func (t *Trie) Insert(words ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, w := range words {
		t.insert(w)
	}
}

func (t *Trie) insert(word string) {
	if !utf8.ValidString(word) {
		word = string([]rune(word))
	}
	n := t.root
	for _, r := range word {
		var created bool
		n, created = n.child(r)
		if created {
			t.nodes++
		}
	}
	if !n.terminal {
		t.words++
	}
	n.terminal = true
	n.word = word
}

// SearchPrefix returns every word that starts with prefix, in traversal order.
// The result is empty, never nil, when no word matches. An empty prefix
// returns every word in the trie.
func (t *Trie) SearchPrefix(prefix string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	results := []string{}
	n := t.find(prefix)
	if n == nil {
		return results
	}
	walk(n, []rune(prefix), 0, 0, func(v Visit) bool {
		if v.Terminal {
			results = append(results, v.Word)
		}
		return true
	})
	return results
}

// Contains reports whether word was inserted exactly.
func (t *Trie) Contains(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := t.find(word)
	return n != nil && n.terminal
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.words
}

// NodeCount returns the number of nodes, root included.
func (t *Trie) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodes
}

// find follows prefix from the root and returns the node it ends at, or nil.
func (t *Trie) find(prefix string) *node {
	n := t.root
	for _, r := range prefix {
		next, ok := n.children[r]
		if !ok {
			return nil
		}
		n = next
	}
	return n
}
