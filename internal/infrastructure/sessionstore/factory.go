package sessionstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/grinder-parts-api/internal/domain/repository"
	"github.com/jhoicas/grinder-parts-api/pkg/config"
)

// Backends soportados (SESSION_BACKEND).
const (
	BackendMemory = "memory"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// New abre el almacenamiento durable indicado por la configuración.
func New(ctx context.Context, cfg config.SessionConfig) (repository.SessionStorage, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStorage(), nil
	case BackendBolt, "":
		return NewBoltStorage(cfg.BoltPath)
	case BackendSQLite:
		return NewSQLiteStorage(cfg.SQLitePath)
	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		s, err := NewRedisStorage(ctx, client)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("sessionstore: backend desconocido %q", cfg.Backend)
	}
}
