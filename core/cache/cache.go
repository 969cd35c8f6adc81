package cache

import (
	"context"
	"fmt"
	"time"

	"interview-scheduler/core/constants"
	"interview-scheduler/core/logger"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

var instance *Cache

// Init connects to redis and stores the shared cache instance
func Init(addr, password string, db int) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to redis", "error", err, "addr", addr)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	instance = &Cache{client: client}
	logger.Info("Redis cache initialized", "addr", addr, "db", db)
	return instance, nil
}

func Get() *Cache {
	return instance
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) GetString(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, key, ttl).Err()
}

// AddToTokenBlacklist records a revoked token id until its natural expiry
func (c *Cache) AddToTokenBlacklist(ctx context.Context, tokenID string, ttl time.Duration) error {
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+tokenID, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a token id has been revoked
func (c *Cache) IsTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IncrementLoginAttempt bumps the failed-login counter for the key and
// refreshes its expiry
func (c *Cache) IncrementLoginAttempt(ctx context.Context, key string) error {
	if err := c.client.Incr(ctx, constants.RedisKeyLoginAttempt+key).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, constants.RedisKeyLoginAttempt+key, constants.LoginBlockDuration).Err()
}

// IsLoginBlocked reports whether the key has exceeded the allowed number of
// failed login attempts
func (c *Cache) IsLoginBlocked(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Get(ctx, constants.RedisKeyLoginAttempt+key).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n >= constants.MaxLoginAttempts, nil
}

// ClearLoginAttempts resets the failed-login counter for the key
func (c *Cache) ClearLoginAttempts(ctx context.Context, key string) error {
	return c.client.Del(ctx, constants.RedisKeyLoginAttempt+key).Err()
}
