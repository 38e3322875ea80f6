// Package config loads storectl configuration from environment variables.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every tunable of the console. All values have working
// defaults for a local development setup against the stub API.
type Config struct {
	// APIBaseURL is the origin of the store API, without a trailing slash.
	APIBaseURL string `env:"STORECTL_API_URL, default=http://localhost:3000"`
	// TokenFile is the durable slot holding the bearer token. Empty means
	// the default under the user config directory.
	TokenFile string `env:"STORECTL_TOKEN_FILE"`
	// CacheBackend selects where fetched collections are held between
	// reads: "memory" (per process) or "redis" (shared across runs).
	CacheBackend string `env:"STORECTL_CACHE, default=memory"`
	Env          string `env:"ENV,       default=development"`
	LogLevel     string `env:"LOG_LEVEL, default=info"`

	Redis RedisConfig
}

// RedisConfig is only consulted when CacheBackend is "redis".
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = defaultTokenFile()
	}
	return &cfg, nil
}

// defaultTokenFile resolves to ~/.config/storectl/token, falling back to
// a file in the working directory when the home dir is unknown.
func defaultTokenFile() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".storectl-token"
	}
	return filepath.Join(base, "storectl", "token")
}

// IsDevelopment reports whether the console runs in development mode,
// which switches the logger to pretty console output.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
