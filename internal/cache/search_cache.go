// Package cache holds a small layered cache for radius-search responses:
// an in-process map in front of Redis. Entries live for a short TTL only, so
// writes that change map contents (register, delete, moderation sweeps)
// become visible within one TTL without explicit invalidation.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"medal-service/internal/metrics"
	"medal-service/internal/models"
	"medal-service/internal/storage"
)

// SearchCache caches radius-search results keyed by rounded center
// coordinates and radius.
type SearchCache struct {
	redis   *storage.RedisClient // optional second layer, may be nil
	ttl     time.Duration
	log     *zap.SugaredLogger
	metrics *metrics.Metrics // optional, may be nil

	mem sync.Map // map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewSearchCache creates a SearchCache. A nil Redis client degrades to the
// memory layer alone.
func NewSearchCache(redis *storage.RedisClient, ttl time.Duration, log *zap.SugaredLogger, m *metrics.Metrics) *SearchCache {
	c := &SearchCache{
		redis:   redis,
		ttl:     ttl,
		log:     log,
		metrics: m,
	}
	go c.cleanupExpired()
	return c
}

// Key derives the cache key for a search. Centers are rounded to ~10 m so
// nearby repeated queries (map refreshes while standing still) share an
// entry.
func Key(lat, lon, radiusKm float64) string {
	return fmt.Sprintf("search:%.4f:%.4f:%.1f", lat, lon, radiusKm)
}

// Get returns the cached result set for the key, trying memory before Redis.
// A Redis hit is promoted into the memory layer.
func (c *SearchCache) Get(ctx context.Context, key string) ([]models.Medal, bool) {
	if data, ok := c.getMemory(key); ok {
		c.hit()
		return decode(data)
	}

	if c.redis != nil {
		data, err := c.redis.GetBytes(ctx, key)
		if err != nil {
			c.log.Warnw("search cache redis read failed", "key", key, "error", err)
		} else if data != nil {
			c.storeMemory(key, data)
			c.hit()
			return decode(data)
		}
	}

	c.miss()
	return nil, false
}

// Store writes the result set to both layers. Failures are logged and
// swallowed; the cache is best-effort.
func (c *SearchCache) Store(ctx context.Context, key string, medals []models.Medal) {
	data, err := json.Marshal(medals)
	if err != nil {
		c.log.Warnw("search cache encode failed", "key", key, "error", err)
		return
	}

	c.storeMemory(key, data)
	if c.redis != nil {
		if err := c.redis.SetBytes(ctx, key, data, c.ttl); err != nil {
			c.log.Warnw("search cache redis write failed", "key", key, "error", err)
		}
	}
}

func (c *SearchCache) getMemory(key string) ([]byte, bool) {
	value, ok := c.mem.Load(key)
	if !ok {
		return nil, false
	}
	entry := value.(memoryEntry)
	if time.Now().After(entry.expiresAt) {
		c.mem.Delete(key)
		return nil, false
	}
	return entry.data, true
}

func (c *SearchCache) storeMemory(key string, data []byte) {
	c.mem.Store(key, memoryEntry{data: data, expiresAt: time.Now().Add(c.ttl)})
}

func (c *SearchCache) cleanupExpired() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		c.mem.Range(func(key, value interface{}) bool {
			if now.After(value.(memoryEntry).expiresAt) {
				c.mem.Delete(key)
			}
			return true
		})
	}
}

func (c *SearchCache) hit() {
	if c.metrics != nil {
		c.metrics.IncCacheHits()
	}
}

func (c *SearchCache) miss() {
	if c.metrics != nil {
		c.metrics.IncCacheMisses()
	}
}

func decode(data []byte) ([]models.Medal, bool) {
	var medals []models.Medal
	if err := json.Unmarshal(data, &medals); err != nil {
		return nil, false
	}
	return medals, true
}
