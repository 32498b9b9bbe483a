package words

import "context"

// Source produces a list of words related to a theme.
type Source interface {
	// Name identifies the source in logs and cache keys.
	Name() string
	// Words returns up to count words for theme.
	Words(ctx context.Context, theme string, count int) ([]string, error)
}

// Origin records where a word list came from.
type Origin string

const (
	OriginGenerated Origin = "generated"
	OriginCached    Origin = "cached"
	OriginFallback  Origin = "fallback"
	OriginFile      Origin = "file"
)
