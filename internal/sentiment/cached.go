package sentiment

import (
	"context"

	"mood-report/internal/domain"
)

// SeriesCache briefly stores resolved series so back-to-back manual runs
// reuse the same upstream responses instead of re-hitting the providers.
// Implementations are best-effort; a miss or a failure just means a fetch.
type SeriesCache interface {
	Get(ctx context.Context, key string) (domain.SentimentSeries, bool)
	Put(ctx context.Context, key string, series domain.SentimentSeries)
}

// CachedSource decorates a Source with read-through caching keyed by the
// source label.
type CachedSource struct {
	inner Source
	cache SeriesCache
}

// WithCache wraps src when a cache is available and is a no-op otherwise.
func WithCache(src Source, cache SeriesCache) Source {
	if cache == nil {
		return src
	}
	return &CachedSource{inner: src, cache: cache}
}

func (c *CachedSource) Label() string                 { return c.inner.Label() }
func (c *CachedSource) Thresholds() domain.Thresholds { return c.inner.Thresholds() }

func (c *CachedSource) Fetch(ctx context.Context) (domain.SentimentSeries, error) {
	if series, ok := c.cache.Get(ctx, c.inner.Label()); ok {
		return series, nil
	}
	series, err := c.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if len(series) > 0 {
		c.cache.Put(ctx, c.inner.Label(), series)
	}
	return series, nil
}
