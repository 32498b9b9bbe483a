package trie

// Visit describes one node reached during a [Trie.Walk].
type Visit struct {
	// Path is the full character sequence from the trie root to this node.
	Path string
	// Char is the rune on the edge leading into this node. It is zero for the
	// node the walk started at.
	Char rune
	// Depth is the distance from the node the walk started at (0 for that node).
	Depth int
	// Terminal reports whether an inserted word ends here.
	Terminal bool
	// Word is the stored word when Terminal is set.
	Word string
}

// WalkFunc is called for each visited node. Returning false skips the node's
// descendants; the walk continues with its next sibling.
type WalkFunc func(v Visit) bool

// Walk visits the subtree reached by prefix in depth-first pre-order, children
// in insertion order. The first visit is the prefix node itself with Depth 0.
// Walk returns false without calling fn when prefix is not in the trie.
//
// The subtree is copied under the read lock and fn runs after it is released,
// so fn sees a consistent snapshot and may call any method of t, Insert
// included. Words inserted by fn are not visited.
func (t *Trie) Walk(prefix string, fn WalkFunc) bool {
	var visits []Visit
	t.mu.RLock()
	n := t.find(prefix)
	if n != nil {
		walk(n, []rune(prefix), 0, 0, func(v Visit) bool {
			visits = append(visits, v)
			return true
		})
	}
	t.mu.RUnlock()
	if n == nil {
		return false
	}

	// Pre-order puts a node's descendants right after it, deeper than it.
	pruned := -1
	for _, v := range visits {
		if pruned >= 0 {
			if v.Depth > pruned {
				continue
			}
			pruned = -1
		}
		if !fn(v) {
			pruned = v.Depth
		}
	}
	return true
}

// walk recurses at most once per rune of the longest word below n.
func walk(n *node, path []rune, char rune, depth int, fn WalkFunc) {
	v := Visit{
		Path:     string(path),
		Char:     char,
		Depth:    depth,
		Terminal: n.terminal,
		Word:     n.word,
	}
	if !fn(v) {
		return
	}
	for _, r := range n.order {
		walk(n.children[r], append(path, r), r, depth+1, fn)
	}
}
