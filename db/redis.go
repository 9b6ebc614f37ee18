package db

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const (
	curveCachePrefix = "curvewatch:curve:"
	curveCacheTTL    = 24 * time.Hour
)

// ConnectRedis wires the advisory snapshot cache. Callers treat a
// connection failure as "no cache", never as a fatal error.
func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return errors.New("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	if err != nil {
		Redis = nil
	}
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// CacheCurve stores the serialized snapshot for a date. No-op without
// a connected cache.
func CacheCurve(date string, payload string) error {
	if Redis == nil {
		return nil
	}
	return Redis.Set(Ctx, curveCachePrefix+date, payload, curveCacheTTL).Err()
}

// CachedCurve returns the serialized snapshot for a date, or "" on a
// miss or when no cache is connected.
func CachedCurve(date string) (string, error) {
	if Redis == nil {
		return "", nil
	}
	payload, err := Redis.Get(Ctx, curveCachePrefix+date).Result()
	if err == redis.Nil {
		return "", nil
	}
	return payload, err
}

// InvalidateCurve drops the cached snapshot so the next read picks up
// a freshly ingested record.
func InvalidateCurve(date string) error {
	if Redis == nil {
		return nil
	}
	return Redis.Del(Ctx, curveCachePrefix+date).Err()
}

// Cache adapts the package-level helpers for handler injection.
type Cache struct{}

func (Cache) CachedCurve(date string) (string, error) { return CachedCurve(date) }
func (Cache) CacheCurve(date, payload string) error   { return CacheCurve(date, payload) }
