package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT    JWTConfig
	SQLite SQLiteConfig
	Redis  RedisConfig
}

type JWTConfig struct {
	Secret string `env:"JWT_SECRET"`
	// TTLSeconds is both the token lifetime and the session cookie max-age.
	TTLSeconds int    `env:"JWT_TTL,         default=86400"`
	CookieName string `env:"JWT_COOKIE_NAME, default=jwt-token"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=data/catering.db"`
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
