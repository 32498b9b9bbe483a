// Package observability provides hooks for metrics, tracing, and logging.
//
// Libraries emit events through the registered hooks; main decides what to do
// with them. The defaults are no-ops, so nothing is recorded unless a consumer
// registers an implementation at startup:
//
//	func main() {
//	    observability.SetSourceHooks(&mySourceHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Source().OnGenerateStart(ctx, "gemini", theme, count)
//	// ... call the model ...
//	observability.Source().OnGenerateComplete(ctx, "gemini", theme, len(words), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Source Hooks
// =============================================================================

// SourceHooks receives events from word sources.
type SourceHooks interface {
	// OnGenerateStart records the start of a word generation call.
	OnGenerateStart(ctx context.Context, source, theme string, count int)

	// OnGenerateComplete records the end of a generation call.
	OnGenerateComplete(ctx context.Context, source, theme string, words int, duration time.Duration, err error)

	// OnFallback records that the built-in word table replaced a failed source.
	OnFallback(ctx context.Context, theme string, cause error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSourceHooks is a no-op implementation of SourceHooks.
type NoopSourceHooks struct{}

func (NoopSourceHooks) OnGenerateStart(context.Context, string, string, int) {}
func (NoopSourceHooks) OnGenerateComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopSourceHooks) OnFallback(context.Context, string, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	sourceHooks SourceHooks = NoopSourceHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetSourceHooks registers custom word source hooks.
// This should be called once at application startup before any words are loaded.
func SetSourceHooks(h SourceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sourceHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Source returns the registered word source hooks.
func Source() SourceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sourceHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	sourceHooks = NoopSourceHooks{}
	cacheHooks = NoopCacheHooks{}
}
