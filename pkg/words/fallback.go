package words

import (
	"context"
	"slices"
	"strings"
)

// DefaultTheme is used when no theme is given and for unknown fallback themes.
const DefaultTheme = "fantasy"

var fallbackTable = map[string][]string{
	"space":      {"planet", "galaxy", "orbit", "asteroid", "nebula", "comet", "cosmos", "satellite"},
	"fantasy":    {"dragon", "wizard", "magic", "castle", "sword", "elf", "dwarf", "quest"},
	"technology": {"algorithm", "network", "database", "server", "cloud", "ai", "robot", "blockchain"},
	"earth":      {"continent", "volcano", "river", "forest", "mountain"},
	"ocean":      {"coral", "wave", "reef", "tide", "shark"},
	"music":      {"melody", "rhythm", "guitar", "piano", "harmony"},
}

// Fallback serves words from a built-in table. It never fails.
type Fallback struct{}

// NewFallback returns the built-in word table source.
func NewFallback() *Fallback { return &Fallback{} }

// Name implements Source.
func (*Fallback) Name() string { return "fallback" }

// Words returns the table entry for theme, ignoring case and surrounding
// space. Unknown themes get the [DefaultTheme] list. count is ignored: the
// whole list is always returned.
func (f *Fallback) Words(_ context.Context, theme string, _ int) ([]string, error) {
	words, _ := f.Lookup(theme)
	return words, nil
}

// Lookup returns a copy of the words for theme and the table theme that
// supplied them.
func (*Fallback) Lookup(theme string) ([]string, string) {
	key := strings.ToLower(strings.TrimSpace(theme))
	words, ok := fallbackTable[key]
	if !ok {
		key = DefaultTheme
		words = fallbackTable[key]
	}
	return slices.Clone(words), key
}

// Themes lists the built-in theme names in sorted order.
func Themes() []string {
	names := make([]string, 0, len(fallbackTable))
	for name := range fallbackTable {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var _ Source = (*Fallback)(nil)
