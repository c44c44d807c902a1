package sessionstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/grinder-parts-api/internal/domain/repository"
	"github.com/jhoicas/grinder-parts-api/pkg/config"
)

// backends devuelve cada implementación lista para usar. Redis se omite si no responde.
func backends(t *testing.T) map[string]repository.SessionStorage {
	t.Helper()
	dir := t.TempDir()
	out := map[string]repository.SessionStorage{
		BackendMemory: NewMemoryStorage(),
	}

	b, err := NewBoltStorage(filepath.Join(dir, "nested", "session.db"))
	require.NoError(t, err)
	out[BackendBolt] = b

	s, err := NewSQLiteStorage(filepath.Join(dir, "session.sqlite"))
	require.NoError(t, err)
	out[BackendSQLite] = s

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	if r, err := NewRedisStorage(context.Background(), client); err == nil {
		out[BackendRedis] = r
	} else {
		_ = client.Close()
	}

	t.Cleanup(func() {
		for _, st := range out {
			_ = st.Close()
		}
	})
	return out
}

func TestSessionStorage_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Remove(ctx, repository.SessionKeyToken))

			_, ok, err := st.Get(ctx, repository.SessionKeyToken)
			require.NoError(t, err)
			assert.False(t, ok, "clave ausente debe reportar ok=false")

			require.NoError(t, st.Set(ctx, repository.SessionKeyToken, "mock-jwt-token"))
			v, ok, err := st.Get(ctx, repository.SessionKeyToken)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "mock-jwt-token", v)

			require.NoError(t, st.Set(ctx, repository.SessionKeyToken, "otro"))
			v, _, _ = st.Get(ctx, repository.SessionKeyToken)
			assert.Equal(t, "otro", v, "Set sobrescribe")

			require.NoError(t, st.Remove(ctx, repository.SessionKeyToken))
			_, ok, err = st.Get(ctx, repository.SessionKeyToken)
			require.NoError(t, err)
			assert.False(t, ok)

			// Remove sobre clave ausente no es error
			assert.NoError(t, st.Remove(ctx, repository.SessionKeyToken))
		})
	}
}

func TestBoltStorage_SobreviveReapertura(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	st, err := NewBoltStorage(path)
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, repository.SessionKeyCurrentUser, `{"id":"1"}`))
	require.NoError(t, st.Close())

	st, err = NewBoltStorage(path)
	require.NoError(t, err)
	defer st.Close()
	v, ok, err := st.Get(ctx, repository.SessionKeyCurrentUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, v)
}

func TestNew_BackendDesconocido(t *testing.T) {
	_, err := New(context.Background(), config.SessionConfig{Backend: "etcd"})
	assert.Error(t, err)
}

func TestNew_Memoria(t *testing.T) {
	st, err := New(context.Background(), config.SessionConfig{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, st)
}
