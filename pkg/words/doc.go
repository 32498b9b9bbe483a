// Package words supplies the themed word lists that populate a trie.
//
// # Sources
//
// A [Source] produces words for a theme. Two implementations ship here:
//
//   - [Gemini]: asks a Gemini model for N single words about the theme, using a
//     JSON response schema so the reply decodes as {"words": [...]}.
//   - [Fallback]: a fixed table of themes (space, fantasy, technology, earth,
//     ocean, music) that works offline. Unknown themes get the fantasy list.
//
// # Loading
//
// [Loader] combines a primary source with a [cache.Cache] and the fallback
// table. Load never fails because of the word source: on any source error it
// returns the fallback words and records the cause in [Result.Err].
//
//	loader := words.NewLoader(words.NewGemini(cfg), c, logger)
//	res := loader.Load(ctx, "space", 30)
//	fmt.Println(res.Origin, res.Words)
//
// Word lists can also come from disk with [ReadFile] (.txt, .json or .csv).
//
// All returned words pass through [Normalize]: trimmed, lowercased and
// de-duplicated in first-seen order.
//
// [cache.Cache]: github.com/matzehuels/wordtrie/pkg/cache.Cache
package words
