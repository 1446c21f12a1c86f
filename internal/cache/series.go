package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mood-report/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	seriesKeyPrefix = "sentiment:series:"
	seriesCacheTTL  = time.Hour
)

// RedisClient is the slice of *redis.Client the series cache uses.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// SeriesCache stores fetched sentiment series for a short TTL so a rerun
// within the hour does not hammer the upstream APIs.
type SeriesCache struct {
	client RedisClient
}

func NewSeriesCache(client RedisClient) *SeriesCache {
	return &SeriesCache{client: client}
}

func (c *SeriesCache) Get(ctx context.Context, key string) (domain.SentimentSeries, bool) {
	raw, err := c.client.Get(ctx, seriesKeyPrefix+key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache read for %s failed: %v", key, err)
		}
		return nil, false
	}
	var series domain.SentimentSeries
	if err := json.Unmarshal([]byte(raw), &series); err != nil {
		log.Printf("cache entry for %s is corrupt, ignoring: %v", key, err)
		return nil, false
	}
	if len(series) == 0 {
		return nil, false
	}
	return series, true
}

func (c *SeriesCache) Put(ctx context.Context, key string, series domain.SentimentSeries) {
	raw, err := json.Marshal(series)
	if err != nil {
		log.Printf("cache encode for %s failed: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, seriesKeyPrefix+key, raw, seriesCacheTTL).Err(); err != nil {
		log.Printf("cache write for %s failed: %v", key, err)
	}
}
