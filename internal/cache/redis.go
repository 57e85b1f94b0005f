package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Redis *redis.Client
	ctx   = context.Background()
)

const (
	ProductCacheTTL  = 10 * time.Minute
	CategoryCacheTTL = time.Hour
	StoreInfoTTL     = time.Hour
)

// InitRedis connects the client. Redis is optional here: when REDIS_HOST is
// unset the service runs without caching and the rate limiters let
// everything through.
func InitRedis() error {
	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		return fmt.Errorf("REDIS_HOST inte konfigurerad")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	if _, err := Redis.Ping(ctx).Result(); err != nil {
		Redis = nil
		return fmt.Errorf("kunde inte ansluta till Redis: %v", err)
	}

	log.Println("✅ Redis ansluten")
	return nil
}

// Enabled reports whether a Redis connection is available.
func Enabled() bool {
	return Redis != nil
}

// CloseRedis closes the connection.
func CloseRedis() error {
	if Redis != nil {
		return Redis.Close()
	}
	return nil
}

// SetCache stores a value with a TTL.
func SetCache(key string, value interface{}, duration time.Duration) error {
	if Redis == nil {
		return nil
	}
	return Redis.Set(ctx, key, value, duration).Err()
}

// GetCache fetches a raw value.
func GetCache(key string) (string, error) {
	if Redis == nil {
		return "", redis.Nil
	}
	return Redis.Get(ctx, key).Result()
}

// DeleteCache removes keys.
func DeleteCache(keys ...string) error {
	if Redis == nil {
		return nil
	}
	return Redis.Del(ctx, keys...).Err()
}

// InvalidateCatalogCache drops every cached catalog response after a reload.
func InvalidateCatalogCache() {
	if Redis == nil {
		return
	}
	keys, err := Redis.Keys(ctx, "products:*").Result()
	if err == nil && len(keys) > 0 {
		Redis.Del(ctx, keys...)
	}
	Redis.Del(ctx, "categories:all")
}

// IncrementRateLimit bumps a rate limit counter inside its window.
func IncrementRateLimit(key string, window time.Duration) (int64, error) {
	if Redis == nil {
		return 0, nil
	}
	pipe := Redis.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
