package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordtrie/pkg/observability"
)

// logHooks reports word source and cache events as debug logs.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnGenerateStart(_ context.Context, source, theme string, count int) {
	h.logger.Debug("generate start", "source", source, "theme", theme, "count", count)
}

func (h logHooks) OnGenerateComplete(_ context.Context, source, theme string, words int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generate failed", "source", source, "theme", theme, "duration", d.Round(time.Millisecond), "error", err)
		return
	}
	h.logger.Debug("generate complete", "source", source, "theme", theme, "words", words, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnFallback(_ context.Context, theme string, cause error) {
	h.logger.Debug("fallback", "theme", theme, "cause", cause)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ observability.SourceHooks = logHooks{}
	_ observability.CacheHooks  = logHooks{}
)
