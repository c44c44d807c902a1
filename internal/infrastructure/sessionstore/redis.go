package sessionstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/grinder-parts-api/internal/domain/repository"
)

var _ repository.SessionStorage = (*RedisStorage)(nil)

const redisKeyPrefix = "session:"

// RedisStorage persiste la sesión en Redis bajo el prefijo "session:". Sin TTL: la
// sesión simulada no expira.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage envuelve un cliente ya configurado y verifica la conexión.
func NewRedisStorage(ctx context.Context, client *redis.Client) (*RedisStorage, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStorage{client: client}, nil
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStorage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *RedisStorage) Close() error {
	return s.client.Close()
}
