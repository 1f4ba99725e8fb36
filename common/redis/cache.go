package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ResultCache stores serialized extraction envelopes for identical result
// windows. It is strictly best effort: every fault degrades to a cache
// miss so a broken Redis never blocks an extraction.
type ResultCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewResultCache creates a result cache with the given TTL.
func NewResultCache(client *RedisClient, ttl time.Duration) *ResultCache {
	return &ResultCache{
		client: client,
		ttl:    ttl,
	}
}

// Key derives a deterministic cache key for one result window of a record
// type. The hash keeps keys short regardless of the window bounds.
func Key(recordType string, start, end int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%d:%d", recordType, start, end)))
	return "extract:" + recordType + ":" + hex.EncodeToString(sum[:8])
}

// Get returns the cached payload for key, or ok=false on a miss or fault.
func (c *ResultCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key)
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("Result cache read failed")
		}
		return nil, false
	}
	return []byte(payload), true
}

// Set stores payload under key for the cache TTL. Failures are logged and
// swallowed.
func (c *ResultCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Result cache write failed")
	}
}
