package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// PriceCache implements ports.PriceCache using Redis. Prices change
// rarely relative to how often they are read, so reads go through here
// and every reprice invalidates the key.
type PriceCache struct {
	client *goredis.Client
	prefix string
}

// NewPriceCache creates a new Redis-backed price cache.
func NewPriceCache(client *goredis.Client) *PriceCache {
	return &PriceCache{
		client: client,
		prefix: "price:",
	}
}

func (c *PriceCache) key(assetID int64) string {
	return c.prefix + strconv.FormatInt(assetID, 10)
}

// Get retrieves a cached per-share price.
// The second return value reports whether the key was present.
func (c *PriceCache) Get(ctx context.Context, assetID int64) (int64, bool, error) {
	val, err := c.client.Get(ctx, c.key(assetID)).Int64()
	if err != nil {
		if err == goredis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis price get: %w", err)
	}
	return val, true, nil
}

// Set stores a per-share price with TTL.
func (c *PriceCache) Set(ctx context.Context, assetID int64, price int64, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(assetID), price, ttl).Err(); err != nil {
		return fmt.Errorf("redis price set: %w", err)
	}
	return nil
}

// Invalidate drops a cached price after a reprice.
func (c *PriceCache) Invalidate(ctx context.Context, assetID int64) error {
	if err := c.client.Del(ctx, c.key(assetID)).Err(); err != nil {
		return fmt.Errorf("redis price invalidate: %w", err)
	}
	return nil
}
