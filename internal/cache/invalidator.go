package cache

import (
	"context"
	"strings"
	"time"

	"aqarhub/internal/utils"

	"github.com/redis/go-redis/v9"
)

// Invalidator drops cached page renders after a successful mutation.
// It is strictly fire-and-forget: a Redis failure is logged and never
// turns a completed mutation into an action failure.
type Invalidator struct {
	rdb    *redis.Client
	prefix string
}

// NewInvalidator connects to Redis via URL and verifies the connection.
func NewInvalidator(url, prefix string) (*Invalidator, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	utils.Log.Infof("redis connected for cache invalidation")
	return &Invalidator{rdb: rdb, prefix: strings.TrimSuffix(prefix, ":")}, nil
}

func (i *Invalidator) key(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return i.prefix + ":" + path
}

// Invalidate deletes the cache entries for the given public paths.
func (i *Invalidator) Invalidate(ctx context.Context, paths ...string) {
	if i == nil || len(paths) == 0 {
		return
	}
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, i.key(p))
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := i.rdb.Del(ctx, keys...).Err(); err != nil {
		utils.Log.Warnf("cache invalidation failed for %v: %v", paths, err)
	}
}

// Close releases the underlying client.
func (i *Invalidator) Close() error {
	if i == nil {
		return nil
	}
	return i.rdb.Close()
}
