package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// GatewayBaseURL is the deployment constant in front of every endpoint
	// path (see the hosted demo backend for the default).
	GatewayBaseURL string        `env:"GATEWAY_BASE_URL, default=https://mobile.faveodemo.com/mudabir/public"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT,     default=15s"`
	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE,  default=500ms"`
	LogLevel       string        `env:"LOG_LEVEL,        default=info"`
	LogPretty      bool          `env:"LOG_PRETTY,       default=true"`

	Storage StorageConfig
}

// StorageConfig selects the Key-Value Store backend: "file" (default),
// "redis", or "memory".
type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND, default=file"`
	Path    string `env:"STORAGE_PATH,    default=helpdesk-store.json"`

	Redis RedisConfig
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
