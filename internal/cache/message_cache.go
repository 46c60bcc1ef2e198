// Package cache holds the redis-backed read cache for platform messages.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillswap/internal/microservices/http-api/models"

	"github.com/redis/go-redis/v9"
)

const platformMessagesKey = "skillswap:platform_messages"

// MessageCache stores the full newest-first message list as one snapshot.
type MessageCache interface {
	Get(ctx context.Context) ([]models.PlatformMessage, bool, error)
	Set(ctx context.Context, msgs []models.PlatformMessage) error
	Invalidate(ctx context.Context) error
}

type RedisMessageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMessageCache wraps client. A nil client gives a cache that never
// hits and never fails, used when redis is not configured or unreachable.
func NewRedisMessageCache(client *redis.Client, ttl time.Duration) *RedisMessageCache {
	return &RedisMessageCache{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and verifies the server answers.
func Connect(ctx context.Context, url, password string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

func (c *RedisMessageCache) Get(ctx context.Context) ([]models.PlatformMessage, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	raw, err := c.client.Get(ctx, platformMessagesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var msgs []models.PlatformMessage
	if err := json.Unmarshal(raw, &msgs); err != nil {
		// corrupt snapshot, treat as a miss so it gets rewritten
		return nil, false, nil
	}
	return msgs, true, nil
}

func (c *RedisMessageCache) Set(ctx context.Context, msgs []models.PlatformMessage) error {
	if c == nil || c.client == nil {
		return nil
	}
	if msgs == nil {
		msgs = []models.PlatformMessage{}
	}
	raw, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, platformMessagesKey, raw, c.ttl).Err()
}

func (c *RedisMessageCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, platformMessagesKey).Err()
}

func (c *RedisMessageCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

var _ MessageCache = (*RedisMessageCache)(nil)
