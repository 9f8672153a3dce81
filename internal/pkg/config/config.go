package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=2h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// StorageDriver selects the persistence backend: "memory" or "postgres".
	StorageDriver string `env:"STORAGE_DRIVER, default=memory"`

	// CacheEnabled toggles the Redis-backed category list cache.
	CacheEnabled bool          `env:"CACHE_ENABLED, default=false"`
	CacheTTL     time.Duration `env:"CACHE_TTL,     default=30s"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST,     default=localhost"`
	Port     string `env:"POSTGRES_PORT,     default=5432"`
	User     string `env:"POSTGRES_USER,     default=shop"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB,       default=shop"`
	SSLMode  string `env:"POSTGRES_SSLMODE,  default=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
