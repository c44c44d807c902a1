package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, InventoryBackendMemory, cfg.Inventory.Backend)
	assert.True(t, cfg.Inventory.Seed)
	assert.Empty(t, cfg.Inventory.LowStockCron)
	assert.Equal(t, "bolt", cfg.Session.Backend)
	assert.Empty(t, cfg.JWT.Secret)
}

func TestFromViper_LeeVariables(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("INVENTORY_BACKEND", "POSTGRES")
	v.Set("INVENTORY_SEED", "false")
	v.Set("INVENTORY_LOWSTOCK_CRON", "@every 5m")
	v.Set("SESSION_BACKEND", "redis")
	v.Set("SESSION_REDIS_DB", "3")
	v.Set("DB_MAX_CONNS", "x") // inválido → por defecto

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, InventoryBackendPostgres, cfg.Inventory.Backend)
	assert.False(t, cfg.Inventory.Seed)
	assert.Equal(t, "@every 5m", cfg.Inventory.LowStockCron)
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, 3, cfg.Session.RedisDB)
	assert.Equal(t, 10, cfg.DB.MaxConns)
}

func TestFromViper_BackendInvalido(t *testing.T) {
	v := viper.New()
	v.Set("INVENTORY_BACKEND", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "parts", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/parts?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", c.ConnectionString())
}
