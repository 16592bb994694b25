package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "seatmap:published:"

// Published caches the JSON of published seat maps for embed viewers. A nil
// *Published is valid and caches nothing.
type Published struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Published {
	return &Published{rdb: rdb, ttl: ttl}
}

// Connect dials addr and checks it answers. An empty addr disables caching.
func Connect(ctx context.Context, addr string, ttl time.Duration) (*Published, error) {
	if addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(rdb, ttl), nil
}

func (c *Published) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

// Get returns the cached document and whether it was present.
func (c *Published) Get(ctx context.Context, mapID string) ([]byte, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	data, err := c.rdb.Get(ctx, keyPrefix+mapID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return data, true, nil
}

func (c *Published) Set(ctx context.Context, mapID string, doc []byte) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Set(ctx, keyPrefix+mapID, doc, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *Published) Invalidate(ctx context.Context, mapID string) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, keyPrefix+mapID).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
