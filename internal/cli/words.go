package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtrie/pkg/words"
)

// wordsCommand creates the command that prints a theme's word list.
func (c *CLI) wordsCommand() *cobra.Command {
	var (
		flags  sourceFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "words [theme]",
		Short: "Print the word list for a theme",
		Long: `Generate (or load from cache) the word list for a theme and print it, one
word per line. Without GOOGLE_API_KEY, or with --offline, the built-in table is
used instead.`,
		Example: `  wordtrie words space
  wordtrie words ocean --count 50 --json
  wordtrie words --file words.txt`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeThemeArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.loadWords(cmd.Context(), firstArg(args), flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(wordsOutput{Theme: res.Theme, Origin: res.Origin, Words: res.Words})
			}
			for _, w := range res.Words {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON object instead of plain lines")

	return cmd
}

type wordsOutput struct {
	Theme  string       `json:"theme"`
	Origin words.Origin `json:"origin"`
	Words  []string     `json:"words"`
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
