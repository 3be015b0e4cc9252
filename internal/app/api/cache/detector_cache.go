package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"audio-redact/internal/app/api"
	"audio-redact/internal/app/utils"
)

const keyPrefix = "a2r:detect:"

// DetectorCache wraps a Detector with a Redis cache keyed by the SHA-256 of
// the transcript. Detection is the most expensive hosted call in the
// pipeline and transcripts repeat when the same file is reprocessed.
//
// The cache degrades to pass-through on any Redis failure: redaction must
// never fail because the cache is down.
type DetectorCache struct {
	inner api.Detector
	rdb   *redis.Client
	ttl   time.Duration
}

func NewDetectorCache(inner api.Detector, rdb *redis.Client, ttl time.Duration) *DetectorCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &DetectorCache{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *DetectorCache) Detect(ctx context.Context, transcript string) ([]string, error) {
	key := keyPrefix + utils.HashString(transcript)

	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var phrases []string
		if json.Unmarshal(data, &phrases) == nil {
			return phrases, nil
		}
	}

	phrases, err := c.inner.Detect(ctx, transcript)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(phrases); err == nil {
		c.rdb.Set(ctx, key, data, c.ttl)
	}
	return phrases, nil
}
