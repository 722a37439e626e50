package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gtohub/admin-portal/internal/config"
)

const redisKeyPrefix = "admin_portal:token:"

// redisMirror stores token refs as plain keys with a TTL matching the
// cookie lifetime, so stale refs age out on their own.
type redisMirror struct {
	client *redis.Client
}

func newRedisMirror(cfg config.MirrorConfig) (*redisMirror, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("session mirror: redis ping: %w", err)
	}
	return &redisMirror{client: client}, nil
}

func (m *redisMirror) Get(ctx context.Context, ref string) (string, error) {
	token, err := m.client.Get(ctx, redisKeyPrefix+ref).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMirrorMiss
	}
	if err != nil {
		return "", fmt.Errorf("session mirror: redis get: %w", err)
	}
	return token, nil
}

func (m *redisMirror) Set(ctx context.Context, ref, token string, ttl time.Duration) error {
	if err := m.client.Set(ctx, redisKeyPrefix+ref, token, ttl).Err(); err != nil {
		return fmt.Errorf("session mirror: redis set: %w", err)
	}
	return nil
}

func (m *redisMirror) Delete(ctx context.Context, ref string) error {
	if err := m.client.Del(ctx, redisKeyPrefix+ref).Err(); err != nil {
		return fmt.Errorf("session mirror: redis del: %w", err)
	}
	return nil
}

func (m *redisMirror) Close() error { return m.client.Close() }
