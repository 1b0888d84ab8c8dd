// Package views counts feed requests per endpoint.
package views

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

const hashKey = "updates:views"

type Counter interface {
	Incr(ctx context.Context, feed string) error
	// All returns nil when counting is disabled.
	All(ctx context.Context) (map[string]int64, error)
}

// RedisCounter keeps all counts in one redis hash.
type RedisCounter struct {
	rdb *redis.Client
}

func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

func (c *RedisCounter) Incr(ctx context.Context, feed string) error {
	return c.rdb.HIncrBy(ctx, hashKey, feed, 1).Err()
}

func (c *RedisCounter) All(ctx context.Context) (map[string]int64, error) {
	raw, err := c.rdb.HGetAll(ctx, hashKey).Result()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(raw))
	for feed, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("view count for %s: %w", feed, err)
		}
		counts[feed] = n
	}
	return counts, nil
}

type Nop struct{}

func (Nop) Incr(context.Context, string) error { return nil }

func (Nop) All(context.Context) (map[string]int64, error) { return nil, nil }

// New picks the redis counter when a client is available.
func New(rdb *redis.Client) Counter {
	if rdb == nil {
		return Nop{}
	}
	return NewRedisCounter(rdb)
}
