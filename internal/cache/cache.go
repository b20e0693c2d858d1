// Package cache is the read-through cache for search results.
//
// Pages are stored in Redis as JSON with a fixed expiration. The cache never
// fails a request: Redis errors are logged and reported as misses so the
// search falls back to the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/deppfellow/dictionary-api/internal/model"
)

// Namespace prefixes every stored key so purges never touch other Redis
// users such as the job queue.
const Namespace = "dictionary:"

const (
	kindWords    = "words"
	kindExamples = "examples"
)

// Cache stores search result pages.
type Cache struct {
	client     *redis.Client
	expiration time.Duration
	metrics    *Metrics
	logger     *zerolog.Logger
}

// New returns a Cache. metrics and logger may be nil.
func New(client *redis.Client, expiration time.Duration, metrics *Metrics, logger *zerolog.Logger) *Cache {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Cache{
		client:     client,
		expiration: expiration,
		metrics:    metrics,
		logger:     logger,
	}
}

// GetWords returns the cached page for key, if any.
func (c *Cache) GetWords(ctx context.Context, key string) (*model.WordPage, bool) {
	return get[model.WordPage](ctx, c, kindWords, key)
}

// SetWords stores a word page.
func (c *Cache) SetWords(ctx context.Context, key string, page model.WordPage) {
	c.set(ctx, kindWords, key, page)
}

// GetExamples returns the cached page for key, if any.
func (c *Cache) GetExamples(ctx context.Context, key string) (*model.ExamplePage, bool) {
	return get[model.ExamplePage](ctx, c, kindExamples, key)
}

// SetExamples stores an example page.
func (c *Cache) SetExamples(ctx context.Context, key string, page model.ExamplePage) {
	c.set(ctx, kindExamples, key, page)
}

func get[T any](ctx context.Context, c *Cache, kind, key string) (*T, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	stored := Namespace + key
	data, err := c.client.Get(ctx, stored).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.miss(kind)
		return nil, false
	} else if err != nil {
		c.metrics.fail(kind, "get")
		c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed, falling back to database")
		return nil, false
	}

	var page T
	if err := json.Unmarshal(data, &page); err != nil {
		c.metrics.fail(kind, "decode")
		c.logger.Warn().Err(err).Str("key", key).Msg("deleting corrupt cache entry")
		c.client.Del(ctx, stored)
		return nil, false
	}

	c.metrics.hit(kind)
	return &page, true
}

func (c *Cache) set(ctx context.Context, kind, key string, value any) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.metrics.fail(kind, "encode")
		c.logger.Error().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return
	}

	if err := c.client.Set(ctx, Namespace+key, data, c.expiration).Err(); err != nil {
		c.metrics.fail(kind, "set")
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Purge deletes every key matching one of the glob patterns. Patterns are
// relative to Namespace.
func (c *Cache) Purge(ctx context.Context, patterns ...string) (int, error) {
	if c == nil || c.client == nil {
		return 0, nil
	}

	deleted := 0
	for _, pattern := range patterns {
		iter := c.client.Scan(ctx, 0, Namespace+pattern, 100).Iterator()
		for iter.Next(ctx) {
			n, err := c.client.Del(ctx, iter.Val()).Result()
			if err != nil {
				return deleted, fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
			}
			deleted += int(n)
		}
		if err := iter.Err(); err != nil {
			return deleted, fmt.Errorf("scan failed for pattern %s: %w", pattern, err)
		}
	}

	return deleted, nil
}
