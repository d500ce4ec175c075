package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Backend stores securestore values in Redis. It satisfies
// securestore.Backend.
type Backend struct {
	db     redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewBackend wraps client. Keys are namespaced with cfg.KeyPrefix and
// written with cfg.TTL.
func NewBackend(client redis.UniversalClient, cfg Config) *Backend {
	return &Backend{
		db:     client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.TTL,
	}
}

// Get maps redis.Nil to a missing key.
func (b *Backend) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := b.db.Get(ctx, b.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(ErrBackend, err)
	}
	return val, true, nil
}

func (b *Backend) Set(ctx context.Context, key, value string) error {
	if err := b.db.Set(ctx, b.prefix+key, value, b.ttl).Err(); err != nil {
		return errors.Join(ErrBackend, err)
	}
	return nil
}

func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := b.db.Del(ctx, b.prefix+key).Err(); err != nil {
		return errors.Join(ErrBackend, err)
	}
	return nil
}
