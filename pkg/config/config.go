package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends selected by the DATABASE_URL scheme.
const (
	BackendMemory   = "memory"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	LogLevel    string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
}

type DatabaseConfig struct {
	URL     string
	Name    string
	Backend string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.RedisHost != ""
}

type CacheConfig struct {
	TenantTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	tenantTTL, err := time.ParseDuration(getEnv("TENANT_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid TENANT_CACHE_TTL: %w", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	backend, err := BackendFromURL(databaseURL)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "1MinuteShop API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8000"),
			RequestTimeout: requestTimeout,
		},
		Database: DatabaseConfig{
			URL:     databaseURL,
			Name:    getEnv("DATABASE_NAME", "oneminuteshop"),
			Backend: backend,
		},
		Redis: RedisConfig{
			RedisHost:     os.Getenv("REDIS_HOST"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       redisDB,
		},
		Cache: CacheConfig{
			TenantTTL: tenantTTL,
		},
	}

	if cfg.Cache.TenantTTL <= 0 {
		return nil, errors.New("TENANT_CACHE_TTL must be positive")
	}

	return cfg, nil
}

// BackendFromURL maps a DATABASE_URL to one of the Backend constants.
// An empty URL selects the in-process store.
func BackendFromURL(url string) (string, error) {
	switch {
	case url == "", strings.HasPrefix(url, "memory://"):
		return BackendMemory, nil
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return BackendMongo, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return BackendPostgres, nil
	default:
		return "", fmt.Errorf("unsupported DATABASE_URL scheme: %q", url)
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
