package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Port string
	}
	Storage struct {
		Path string
	}
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. Everything has a default; the app runs with no env at all.
func Load(path string) (*Config, error) {
	if path != "" {
		err := godotenv.Load(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	cfg.App.Port = os.Getenv("APP_PORT")
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}

	cfg.Storage.Path = os.Getenv("DATA_PATH")
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "storefront.db"
	}

	return cfg, nil
}
