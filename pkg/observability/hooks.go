// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. The pipeline runner calls
// the registered hooks around ranking, rendering, cache lookups and calls to
// the text-generation service; the scoring package itself never does.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// The runner emits events:
//
//	observability.Pipeline().OnRankStart(ctx, len(departments), len(adjacencies))
//	// ... rank ...
//	observability.Pipeline().OnRankComplete(ctx, len(departments), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the study pipeline.
type PipelineHooks interface {
	// Ranking events
	OnRankStart(ctx context.Context, departments, adjacencies int)
	OnRankComplete(ctx context.Context, departments int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, chart, format string)
	OnRenderComplete(ctx context.Context, chart, format string, size int, duration time.Duration, err error)
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
// Advisor Hooks
// =============================================================================

// AdvisorHooks receives events from the text-generation service client.
type AdvisorHooks interface {
	// OnGenerateStart records an outgoing prompt.
	OnGenerateStart(ctx context.Context, model string, promptSize int)

	// OnGenerateComplete records the end of a generation call.
	OnGenerateComplete(ctx context.Context, model string, textSize int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRankStart(context.Context, int, int)                      {}
func (NoopPipelineHooks) OnRankComplete(context.Context, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, string)             {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopAdvisorHooks is a no-op implementation of AdvisorHooks.
type NoopAdvisorHooks struct{}

func (NoopAdvisorHooks) OnGenerateStart(context.Context, string, int) {}
func (NoopAdvisorHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	advisorHooks  AdvisorHooks  = NoopAdvisorHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetAdvisorHooks registers custom advisor hooks.
func SetAdvisorHooks(h AdvisorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		advisorHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Advisor returns the registered advisor hooks.
func Advisor() AdvisorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return advisorHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	advisorHooks = NoopAdvisorHooks{}
}
