package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Several dashboards can share one Redis instance by scoping their keys
// with a per-deployment prefix:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "plantlayout:lacima:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RecommendationKey generates a prefixed key for recommendation caching.
func (k *ScopedKeyer) RecommendationKey(studyHash string, opts RecommendationKeyOpts) string {
	return k.prefix + k.inner.RecommendationKey(studyHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(studyHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(studyHash, opts)
}
