package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	// BcryptCost tunes the password hashing work factor.
	BcryptCost int `env:"BCRYPT_COST, default=10"`

	// RequireAuth attaches the bearer-token middleware to the /api group.
	// Off by default: resources are open and only token validity would be
	// checked, never ownership.
	RequireAuth bool `env:"REQUIRE_AUTH, default=false"`

	DB DBConfig
}

type DBConfig struct {
	Path  string `env:"DB_PATH,  default=lending.db"`
	Debug bool   `env:"DB_DEBUG, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
