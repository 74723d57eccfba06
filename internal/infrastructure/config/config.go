package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretKey signs the session cookie. The default exists so a fresh
	// checkout boots; real deployments must override it.
	SecretKey  string        `env:"SECRET_KEY,  default=dev-key-change-in-production"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	DBPath string `env:"DB_PATH, default=hospital.db"`
}

// Load reads configuration from the environment, merging in a .env file
// when one is present (missing .env is not an error).
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
