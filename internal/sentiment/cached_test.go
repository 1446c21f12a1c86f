package sentiment

import (
	"context"
	"testing"

	"mood-report/internal/domain"
)

type mapSeriesCache struct {
	entries map[string]domain.SentimentSeries
	puts    int
}

func newMapSeriesCache() *mapSeriesCache {
	return &mapSeriesCache{entries: make(map[string]domain.SentimentSeries)}
}

func (c *mapSeriesCache) Get(ctx context.Context, key string) (domain.SentimentSeries, bool) {
	series, ok := c.entries[key]
	return series, ok
}

func (c *mapSeriesCache) Put(ctx context.Context, key string, series domain.SentimentSeries) {
	c.puts++
	c.entries[key] = series
}

func TestWithCacheNoCacheIsPassthrough(t *testing.T) {
	src := &stubSource{label: "a"}
	if got := WithCache(src, nil); got != Source(src) {
		t.Fatal("expected the source itself when no cache is configured")
	}
}

func TestCachedSourceFetchesOnceThenHits(t *testing.T) {
	inner := &stubSource{label: "a", series: seriesOf(40)}
	cache := newMapSeriesCache()
	src := WithCache(inner, cache)

	for i := 0; i < 3; i++ {
		series, err := src.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(series) != 1 || series[0].Value != 40 {
			t.Fatalf("unexpected series on call %d: %+v", i, series)
		}
	}

	if inner.calls != 1 {
		t.Fatalf("inner fetched %d times, want 1", inner.calls)
	}
	if cache.puts != 1 {
		t.Fatalf("cache stored %d times, want 1", cache.puts)
	}
}

func TestCachedSourceDoesNotCacheFailures(t *testing.T) {
	inner := &stubSource{label: "a", err: domain.ErrBadStatus}
	cache := newMapSeriesCache()
	src := WithCache(inner, cache)

	if _, err := src.Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if cache.puts != 0 {
		t.Fatalf("failures must not be cached, got %d puts", cache.puts)
	}
}
