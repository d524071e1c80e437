package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/recomovi/recomovi/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func buildKey(sel domain.CorpusSelector, title string, limit int) string {
	return fmt.Sprintf("rec:%s:%s:limit:%d", sel, title, limit)
}

// Get returns a cached recommendation list, or found=false on a miss.
func (c *Cache) Get(ctx context.Context, sel domain.CorpusSelector, title string, limit int) ([]string, bool, error) {
	key := buildKey(sel, title, limit)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get recommendations from cache: %w", err)
	}

	var titles []string
	if err := json.Unmarshal([]byte(val), &titles); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recommendations %s: %w", key, err)
	}
	return titles, true, nil
}

// Set stores a recommendation list.
func (c *Cache) Set(ctx context.Context, sel domain.CorpusSelector, title string, limit int, titles []string) error {
	key := buildKey(sel, title, limit)
	val, err := json.Marshal(titles)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set recommendations in cache: %w", err)
	}
	return nil
}

// ClearCorpus drops every cached list for a corpus, used when the custom
// corpus is rebuilt.
func (c *Cache) ClearCorpus(ctx context.Context, sel domain.CorpusSelector) error {
	pattern := fmt.Sprintf("rec:%s:*", sel)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
