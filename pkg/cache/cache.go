// Package cache stores rendered artifacts and generated recommendations so
// repeated dashboard requests do not redo slow work (Graphviz rendering,
// calls to the text-generation service).
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory; used by the CLI
//   - [RedisCache]: shared cache for the HTTP dashboard
//   - [NullCache]: caching disabled
//
// # Keys
//
// A [Keyer] derives keys from a content hash of the study plus the options
// that affect the cached value, so an edited study never hits a stale entry.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache is a byte-oriented key/value store with expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// RecommendationKey keys generated study recommendations.
	RecommendationKey(studyHash string, opts RecommendationKeyOpts) string
	// ArtifactKey keys rendered charts.
	ArtifactKey(studyHash string, opts ArtifactKeyOpts) string
}

// RecommendationKeyOpts are the options that change a recommendation.
type RecommendationKeyOpts struct {
	Model    string `json:"model"`
	Language string `json:"language"`
}

// ArtifactKeyOpts are the options that change a rendered chart.
type ArtifactKeyOpts struct {
	Chart           string  `json:"chart"`
	Format          string  `json:"format"`
	Width           int     `json:"width,omitempty"`
	Height          int     `json:"height,omitempty"`
	Scale           float64 `json:"scale,omitempty"`
	ShowUnimportant bool    `json:"show_unimportant,omitempty"`
	Legend          bool    `json:"legend,omitempty"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RecommendationKey returns "recommendation:<hash>".
func (DefaultKeyer) RecommendationKey(studyHash string, opts RecommendationKeyOpts) string {
	return hashKey("recommendation", studyHash, opts)
}

// ArtifactKey returns "artifact:<hash>".
func (DefaultKeyer) ArtifactKey(studyHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", studyHash, opts)
}

// NullCache is a no-op cache that never stores anything.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return NullCache{}
}

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
