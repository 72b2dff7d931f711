package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lacima/plantlayout/pkg/advisor"
	"github.com/lacima/plantlayout/pkg/cache"
	"github.com/lacima/plantlayout/pkg/errors"
	"github.com/lacima/plantlayout/pkg/observability"
	"github.com/lacima/plantlayout/pkg/slp"
	"github.com/lacima/plantlayout/pkg/study"
)

// Runner encapsulates study operations with caching.
// Both CLI and server use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, logger and advisor - it
// doesn't store results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Advisor generates recommendations; nil disables Recommend.
	Advisor *advisor.Advisor
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Rank orders the study's departments by Total Closeness Rating.
func (r *Runner) Rank(ctx context.Context, s *study.Study) ([]slp.Placement, error) {
	hooks := observability.Pipeline()
	hooks.OnRankStart(ctx, len(s.Departments), len(s.Adjacencies))
	start := time.Now()

	ranking, err := s.Rank()
	hooks.OnRankComplete(ctx, len(s.Departments), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("ranked departments", "departments", len(ranking), "duration", time.Since(start))
	return ranking, nil
}

// Analyze builds the area comparison for the study.
func (r *Runner) Analyze(s *study.Study) study.Analysis {
	return s.Analyze()
}

// RenderWithCacheInfo draws one chart and reports whether it came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *study.Study, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	logger := r.logger(opts)

	var key string
	if opts.Cacheable() {
		hash, err := StudyHash(s)
		if err != nil {
			return nil, false, err
		}
		key = r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts())
		if !opts.Refresh {
			if data, hit := r.cacheGet(ctx, "artifact", key); hit {
				logger.Debug("artifact from cache", "chart", opts.Chart, "format", opts.Format)
				return data, true, nil
			}
		}
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Chart, opts.Format)
	start := time.Now()

	data, err := RenderStudy(ctx, s, opts)
	hooks.OnRenderComplete(ctx, opts.Chart, opts.Format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	logger.Debug("rendered chart", "chart", opts.Chart, "format", opts.Format, "bytes", len(data), "duration", time.Since(start))

	if key != "" {
		r.cacheSet(ctx, "artifact", key, data, TTLArtifact)
	}
	return data, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, s *study.Study, opts Options) ([]byte, error) {
	data, _, err := r.RenderWithCacheInfo(ctx, s, opts)
	return data, err
}

// RecommendWithCacheInfo returns a recommendation for s, reusing a cached one
// for the same study, model and language unless refresh is set. It reports
// whether the result came from the cache.
func (r *Runner) RecommendWithCacheInfo(ctx context.Context, s *study.Study, refresh bool) (*advisor.Recommendation, bool, error) {
	if r.Advisor == nil {
		return nil, false, errors.New(errors.ErrCodeAdvisorUnavailable, "no text-generation service configured")
	}
	if err := s.Validate(); err != nil {
		return nil, false, err
	}

	hash, err := StudyHash(s)
	if err != nil {
		return nil, false, err
	}
	key := r.Keyer.RecommendationKey(hash, cache.RecommendationKeyOpts{
		Model:    r.Advisor.Model(),
		Language: r.Advisor.Language(),
	})

	if !refresh {
		if data, hit := r.cacheGet(ctx, "recommendation", key); hit {
			var rec advisor.Recommendation
			if err := json.Unmarshal(data, &rec); err == nil {
				return &rec, true, nil
			}
			// Undecodable entries fall through and are overwritten.
		}
	}

	start := time.Now()
	rec, err := r.Advisor.Recommend(ctx, s)
	if err != nil {
		r.Logger.Warn("recommendation failed", "model", r.Advisor.Model(), "err", err)
		return nil, false, err
	}
	r.Logger.Info("generated recommendation", "id", rec.ID, "model", rec.Model, "duration", time.Since(start))

	if data, err := json.Marshal(rec); err == nil {
		r.cacheSet(ctx, "recommendation", key, data, TTLRecommendation)
	}
	return rec, false, nil
}

// Recommend is a convenience wrapper that calls RecommendWithCacheInfo and discards the cache hit info.
func (r *Runner) Recommend(ctx context.Context, s *study.Study, refresh bool) (*advisor.Recommendation, error) {
	rec, _, err := r.RecommendWithCacheInfo(ctx, s, refresh)
	return rec, err
}

// StudyHash returns the content hash of s used in cache keys.
func StudyHash(s *study.Study) (string, error) {
	data, err := study.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("serialize study for cache key: %w", err)
	}
	return cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// cacheGet reads key, treating backend errors as misses.
func (r *Runner) cacheGet(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) cacheSet(ctx context.Context, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
