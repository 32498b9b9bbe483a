package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtrie/pkg/trie"
	"github.com/matzehuels/wordtrie/pkg/words"
)

const noSuggestions = "No suggestions"

// completeCommand creates the command that completes prefixes.
func (c *CLI) completeCommand() *cobra.Command {
	var (
		flags sourceFlags
		theme string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "complete <prefix>...",
		Short: "Print completions for one or more prefixes",
		Long: `Load the word list for --theme, build a trie from it, and print every word
that starts with each prefix. Prefixes are lowercased first.`,
		Example: `  wordtrie complete dr wi --theme fantasy
  wordtrie complete pl --theme space --limit 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			res, err := c.loadWords(cmd.Context(), theme, flags)
			if err != nil {
				return err
			}
			t := buildTrie(res.Words)
			printStats(t.Len(), t.NodeCount(), res.Origin)

			for _, prefix := range args {
				writeCompletions(cmd.OutOrStdout(), t, words.Fold(prefix), limit)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&theme, "theme", "t", "", "word list theme (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("theme", completeThemeFlag)
	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many completions per prefix (0 = all)")

	return cmd
}

// writeCompletions prints "prefix: a, b, c" for one prefix. The limit only
// affects display; the remainder is summarized.
func writeCompletions(w io.Writer, t *trie.Trie, prefix string, limit int) {
	matches := t.SearchPrefix(prefix)
	if len(matches) == 0 {
		fmt.Fprintf(w, "%s: %s\n", prefix, noSuggestions)
		return
	}
	shown := matches
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	line := strings.Join(shown, ", ")
	if rest := len(matches) - len(shown); rest > 0 {
		line += fmt.Sprintf(" (+%d more)", rest)
	}
	fmt.Fprintf(w, "%s: %s\n", prefix, line)
}
