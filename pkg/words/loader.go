package words

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordtrie/pkg/cache"
	"github.com/matzehuels/wordtrie/pkg/errors"
	"github.com/matzehuels/wordtrie/pkg/observability"
)

// DefaultTTL is how long generated word lists stay cached.
const DefaultTTL = 24 * time.Hour

const cacheKeyType = "words"

// Result is the outcome of a [Loader.Load].
type Result struct {
	Words  []string
	Theme  string
	Origin Origin
	// Err is the source failure that caused a fallback, if any.
	Err error
}

// Loader resolves word lists through a cache, a primary source and the
// built-in fallback table.
//
// A Loader is stateless apart from its collaborators and is safe for
// concurrent use when they are.
type Loader struct {
	Source   Source // nil means offline: always use the fallback
	Cache    cache.Cache
	TTL      time.Duration
	Fallback *Fallback
	Logger   *log.Logger
}

// NewLoader creates a loader for src. A nil cache disables caching and a nil
// logger discards output.
func NewLoader(src Source, c cache.Cache, logger *log.Logger) *Loader {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		Source:   src,
		Cache:    c,
		TTL:      DefaultTTL,
		Fallback: NewFallback(),
		Logger:   logger,
	}
}

// Load returns count words for theme. An empty theme means [DefaultTheme].
//
// Load does not fail: when the source errors or returns nothing usable, the
// fallback table supplies the words and Result.Err holds the cause.
func (l *Loader) Load(ctx context.Context, theme string, count int) Result {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		theme = DefaultTheme
	}
	if l.Source == nil {
		return l.fallback(ctx, theme, nil)
	}

	key := cache.Key(cacheKeyType, l.Source.Name(), Fold(theme), count)
	if words, ok := l.cached(ctx, key); ok {
		l.Logger.Debug("word list cache hit", "theme", theme)
		return Result{Words: words, Theme: theme, Origin: OriginCached}
	}

	words, err := l.Source.Words(ctx, theme, count)
	if err != nil {
		return l.fallback(ctx, theme, err)
	}
	words = Normalize(words)
	if len(words) == 0 {
		return l.fallback(ctx, theme, errors.New(errors.ErrCodeInvalidResponse, "%s returned no words", l.Source.Name()))
	}

	if data, err := json.Marshal(words); err == nil {
		if err := l.Cache.Set(ctx, key, data, l.TTL); err != nil {
			l.Logger.Debug("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
		}
	}
	return Result{Words: words, Theme: theme, Origin: OriginGenerated}
}

// LoadFile reads a word list from path. Unlike Load, file errors are returned:
// a bad path is a user mistake, not a source outage.
func (l *Loader) LoadFile(path, theme string) (Result, error) {
	words, err := ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	if len(words) == 0 {
		return Result{}, errors.New(errors.ErrCodeInvalidInput, "%s contains no words", path)
	}
	return Result{Words: words, Theme: strings.TrimSpace(theme), Origin: OriginFile}, nil
}

func (l *Loader) cached(ctx context.Context, key string) ([]string, bool) {
	data, hit, err := l.Cache.Get(ctx, key)
	if err != nil {
		l.Logger.Debug("cache read failed", "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	var words []string
	if err := json.Unmarshal(data, &words); err != nil || len(words) == 0 {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return words, true
}

func (l *Loader) fallback(ctx context.Context, theme string, cause error) Result {
	words, table := l.Fallback.Lookup(theme)
	if cause != nil {
		observability.Source().OnFallback(ctx, theme, cause)
		l.Logger.Warn("word source failed, using fallback words",
			"theme", theme, "table", table, "error", errors.UserMessage(cause))
	} else {
		l.Logger.Debug("offline, using fallback words", "theme", theme, "table", table)
	}
	return Result{Words: Normalize(words), Theme: theme, Origin: OriginFallback, Err: cause}
}
