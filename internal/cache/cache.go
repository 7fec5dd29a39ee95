package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const ns = "eventsapi:v1"

// Store is the subset of the Redis client the cache needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type Cache struct {
	rdb Store
	sf  singleflight.Group
}

func New(rdb Store) *Cache {
	return &Cache{rdb: rdb}
}

// KeyAdvertisements is the cache key of an advertisement listing for the given filter.
func KeyAdvertisements(title, category string) string {
	return fmt.Sprintf("%s:ads:%s:%s", ns, escape(title), escape(category))
}

func escape(s string) string {
	return strings.ReplaceAll(s, ":", "%3A")
}

// GetOrSetJSON returns the cached value at key, or loads, stores and returns it.
// Concurrent misses for one key share a single load.
func GetOrSetJSON[T any](
	ctx context.Context,
	c *Cache,
	key string,
	ttl time.Duration,
	loader func(ctx context.Context) (T, error),
) (T, error) {
	var zero T

	v, ok, err := getJSON[T](ctx, c, key)
	if err != nil {
		zap.L().Warn("cache read failed, loading from source", zap.String("key", key), zap.Error(err))
	} else if ok {
		return v, nil
	}

	vAny, err, _ := c.sf.Do(key, func() (any, error) {
		v, err := loader(ctx)
		if err != nil {
			return nil, err
		}

		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		// A failed write only costs the next reader a reload.
		_ = c.rdb.Set(ctx, key, b, ttl).Err()

		return v, nil
	})
	if err != nil {
		return zero, err
	}

	v, ok = vAny.(T)
	if !ok {
		return zero, errors.New("cache: type assertion failed")
	}

	return v, nil
}

func getJSON[T any](ctx context.Context, c *Cache, key string) (T, bool, error) {
	var out T

	s, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return out, false, nil
	}
	if err != nil {
		return out, false, err
	}

	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return out, false, nil
	}

	return out, true, nil
}
