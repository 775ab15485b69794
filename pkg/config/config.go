package config

import (
	"log/slog"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

const defaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads the env file on first call. HABITFLOW_ENV_FILE overrides the
// default location. A missing file is fine, values may come from the
// process environment directly.
func New() *Config {
	once.Do(func() {
		path := os.Getenv("HABITFLOW_ENV_FILE")
		if path == "" {
			path = defaultEnvFile
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("env file not loaded", slog.String("path", path), slog.String("error", err.Error()))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
