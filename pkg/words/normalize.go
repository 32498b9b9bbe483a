package words

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims each word, drops empty ones, lowercases the rest and
// removes duplicates, keeping the first occurrence. Each invalid UTF-8 byte
// becomes U+FFFD before comparison, the same key the trie would use, so
// "caf\xe9" and "caf\xe8" count as one word. The result is never nil.
func Normalize(words []string) []string {
	caser := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !utf8.ValidString(w) {
			w = string([]rune(w))
		}
		w = caser.String(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Fold lowercases s the same way [Normalize] does, without trimming.
// Use it on prefixes so lookups match normalized words.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
