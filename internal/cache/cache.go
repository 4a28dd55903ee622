// Package cache clears the API's rate-limit cache. Flushing is deliberately
// total: every key in the selected database goes, not just ratelimit:* keys.
package cache

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/picseed/internal/shellx"
	"github.com/redis/go-redis/v9"
)

// Flusher empties the cache keyspace.
type Flusher interface {
	FlushAll(ctx context.Context) error
}

// RedisCache flushes over a direct Redis connection.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects lazily; the first command dials.
func NewRedisCache(addr, password string, db int) *RedisCache {
	return &RedisCache{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (c *RedisCache) FlushAll(ctx context.Context) error {
	if err := c.client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("redis flushdb: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// DockerCache runs redis-cli inside the cache container.
type DockerCache struct {
	runner    shellx.Runner
	container string
}

func NewDockerCache(runner shellx.Runner, container string) *DockerCache {
	return &DockerCache{runner: runner, container: container}
}

func (c *DockerCache) FlushAll(ctx context.Context) error {
	_, err := c.runner.Run(ctx, shellx.Command{
		Name: "docker",
		Args: []string{"exec", c.container, "redis-cli", "flushdb"},
	})
	if err != nil {
		return fmt.Errorf("redis-cli flushdb: %w", err)
	}
	return nil
}
