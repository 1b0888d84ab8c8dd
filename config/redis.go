package config

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// OpenRedis returns nil when no address is configured.
func OpenRedis(ctx context.Context, cfg *Config) (*redis.Client, error) {
	redisConf := cfg.Redis
	if redisConf.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     redisConf.Addr,
		Password: redisConf.Password,
		DB:       redisConf.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}
