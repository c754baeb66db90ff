package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Open resolves a store URL:
//
//	""  or "memory:"             in-process map
//	"file:///path" or "/path"    one file per key under path
//	"redis://..." "rediss://..." Redis, keys prefixed with DefaultRedisPrefix
func Open(ctx context.Context, rawURL string) (KV, error) {
	switch {
	case rawURL == "" || rawURL == "memory:":
		return NewMemoryStore(), nil
	case strings.HasPrefix(rawURL, "redis://"), strings.HasPrefix(rawURL, "rediss://"):
		opts, err := redis.ParseURL(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		rdb := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return NewRedisStore(rdb, DefaultRedisPrefix), nil
	case strings.HasPrefix(rawURL, "file://"):
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse file url: %w", err)
		}
		return NewFileStore(u.Path)
	case strings.Contains(rawURL, "://"):
		return nil, fmt.Errorf("unsupported store url %q", rawURL)
	default:
		return NewFileStore(rawURL)
	}
}
