package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Runtime configuration, parsed from the environment once at startup.
// DBPath defaults to a fixed user-local location when unset.
type Config struct {
	DBPath   string `env:"LOGISTICS_DB_PATH"`
	Port     string `env:"PORT" envDefault:"8080"`
	SeedPath string `env:"SEED_PATH"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("load config: parse environment: %w", err)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("load config: resolve home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".blackroad", "logistics.db")
	}

	return &cfg, nil
}
