package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtrie/pkg/trie"
	"github.com/matzehuels/wordtrie/pkg/words"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for wordtrie.

To load completions:

Bash:
  $ source <(wordtrie completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ wordtrie completion bash > /etc/bash_completion.d/wordtrie
  # macOS:
  $ wordtrie completion bash > $(brew --prefix)/etc/bash_completion.d/wordtrie

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ wordtrie completion zsh > "${fpath[1]}/_wordtrie"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ wordtrie completion fish | source

  # To load completions for each session, execute once:
  $ wordtrie completion fish > ~/.config/fish/completions/wordtrie.fish

PowerShell:
  PS> wordtrie completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> wordtrie completion powershell > wordtrie.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}

// completeThemeArg suggests built-in themes for a leading [theme] argument.
func completeThemeArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return themeCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeThemeFlag suggests built-in themes for --theme.
func completeThemeFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return themeCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func themeCompletions(prefix string) []string {
	t := trie.New()
	t.Insert(words.Themes()...)
	return t.SearchPrefix(words.Fold(prefix))
}
