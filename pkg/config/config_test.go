package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"APP_NAME", "APP_VERSION", "APP_ENV", "LOG_LEVEL", "PORT", "REQUEST_TIMEOUT",
		"DATABASE_URL", "DATABASE_NAME", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
		"REDIS_DB", "TENANT_CACHE_TTL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, BackendMemory, cfg.Database.Backend)
	assert.Equal(t, "oneminuteshop", cfg.Database.Name)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.Cache.TenantTTL)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "shop")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("TENANT_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, BackendMongo, cfg.Database.Backend)
	assert.Equal(t, "shop", cfg.Database.Name)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.RedisDB)
	assert.Equal(t, 30*time.Second, cfg.Cache.TenantTTL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string][2]string{
		"redis db":     {"REDIS_DB", "zero"},
		"timeout":      {"REQUEST_TIMEOUT", "soon"},
		"ttl":          {"TENANT_CACHE_TTL", "-1s"},
		"database url": {"DATABASE_URL", "mysql://localhost"},
	}

	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestBackendFromURL(t *testing.T) {
	tests := map[string]string{
		"":                               BackendMemory,
		"memory://":                      BackendMemory,
		"mongodb://user:pw@host:27017":   BackendMongo,
		"mongodb+srv://cluster.example":  BackendMongo,
		"postgres://u:p@localhost/shop":  BackendPostgres,
		"postgresql://u:p@localhost/db":  BackendPostgres,
	}

	for url, want := range tests {
		got, err := BackendFromURL(url)
		require.NoError(t, err, url)
		assert.Equal(t, want, got, url)
	}
}
