package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordtrie/pkg/trie"
	"github.com/matzehuels/wordtrie/pkg/words"
)

const (
	quitWord       = "quit"
	maxSuggestions = 8
	maxHistory     = 5
)

// Shell styles
var (
	shellSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	shellNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	shellDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	shellCursorStyle   = lipgloss.NewStyle().Reverse(true)
)

// shellCommand creates the interactive autocomplete command.
func (c *CLI) shellCommand() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "shell [theme]",
		Short: "Interactive autocomplete over a themed trie",
		Long: `Build a trie from the theme's word list and complete prefixes as you type.
Enter records the current prefix, tab accepts the highlighted suggestion, and
typing "quit" followed by Enter (or pressing esc) exits.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeThemeArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			res, err := c.loadWords(ctx, firstArg(args), flags)
			if err != nil {
				return err
			}
			t := buildTrie(res.Words)

			p := tea.NewProgram(newShellModel(t, res.Theme),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("shell: %w", err)
			}
			printInfo("Thanks for using %s!", appName)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// shellModel - live prefix completion
// =============================================================================

// shellEntry is one recorded prefix and what it completed to.
type shellEntry struct {
	prefix  string
	matches []string
}

// shellModel is the bubbletea model for the interactive shell.
type shellModel struct {
	trie        *trie.Trie
	theme       string
	input       []rune
	cursorPos   int
	suggestions []string
	selected    int
	history     []shellEntry
	quitting    bool
}

func newShellModel(t *trie.Trie, theme string) shellModel {
	m := shellModel{trie: t, theme: theme}
	m.refresh()
	return m
}

func (m shellModel) Init() tea.Cmd {
	return nil
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if m.cursorPos > 0 {
			m.input = append(m.input[:m.cursorPos-1], m.input[m.cursorPos:]...)
			m.cursorPos--
			m.refresh()
		}
	case tea.KeyLeft:
		if m.cursorPos > 0 {
			m.cursorPos--
		}
	case tea.KeyRight:
		if m.cursorPos < len(m.input) {
			m.cursorPos++
		}
	case tea.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < min(len(m.suggestions), maxSuggestions)-1 {
			m.selected++
		}
	case tea.KeyTab:
		if len(m.suggestions) > 0 {
			m.input = []rune(m.suggestions[m.selected])
			m.cursorPos = len(m.input)
			m.refresh()
		}
	case tea.KeySpace:
		m.insert([]rune{' '})
	case tea.KeyRunes:
		m.insert(key.Runes)
	}
	return m, nil
}

// submit records the current prefix, or exits on the quit word.
func (m shellModel) submit() (tea.Model, tea.Cmd) {
	prefix := m.prefix()
	if prefix == quitWord {
		m.quitting = true
		return m, tea.Quit
	}
	m.history = append(m.history, shellEntry{prefix: prefix, matches: m.trie.SearchPrefix(prefix)})
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.input = nil
	m.cursorPos = 0
	m.refresh()
	return m, nil
}

func (m *shellModel) insert(r []rune) {
	tail := append([]rune{}, m.input[m.cursorPos:]...)
	m.input = append(append(m.input[:m.cursorPos], r...), tail...)
	m.cursorPos += len(r)
	m.refresh()
}

// refresh recomputes suggestions for the current input.
func (m *shellModel) refresh() {
	m.suggestions = m.trie.SearchPrefix(m.prefix())
	m.selected = 0
}

// prefix is the trimmed, folded input. Live suggestions and recorded entries
// both use it, so what Enter records matches what was shown.
func (m shellModel) prefix() string {
	return words.Fold(strings.TrimSpace(string(m.input)))
}

func (m shellModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(StyleTitle.Render("wordtrie"))
	b.WriteString(shellDimStyle.Render(fmt.Sprintf("  %s · %d words", m.theme, m.trie.Len())))
	b.WriteString("\n")
	b.WriteString(shellDimStyle.Render("type to complete  ↑/↓ select  tab accept  ⏎ record  quit/esc exit"))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(shellDimStyle.Render(iconInfo + " " + e.prefix + ": "))
		if len(e.matches) == 0 {
			b.WriteString(StyleWarning.Render(noSuggestions))
		} else {
			b.WriteString(shellNormalStyle.Render(strings.Join(e.matches, ", ")))
		}
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(StyleHighlight.Render("Prefix: "))
	b.WriteString(m.renderInput())
	b.WriteString("\n")

	if len(m.suggestions) == 0 {
		b.WriteString("  " + StyleWarning.Render(noSuggestions) + "\n")
		return b.String()
	}
	shown := m.suggestions[:min(len(m.suggestions), maxSuggestions)]
	for i, s := range shown {
		if i == m.selected {
			b.WriteString(shellSelectedStyle.Render("▸ " + s))
		} else {
			b.WriteString(shellNormalStyle.Render("  " + s))
		}
		b.WriteString("\n")
	}
	if rest := len(m.suggestions) - len(shown); rest > 0 {
		b.WriteString(shellDimStyle.Render(fmt.Sprintf("  +%d more", rest)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m shellModel) renderInput() string {
	if m.cursorPos >= len(m.input) {
		return string(m.input) + shellCursorStyle.Render(" ")
	}
	return string(m.input[:m.cursorPos]) +
		shellCursorStyle.Render(string(m.input[m.cursorPos])) +
		string(m.input[m.cursorPos+1:])
}
