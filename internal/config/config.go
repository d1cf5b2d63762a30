package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every runtime parameter. Values come from the environment;
// a .env file is loaded first when one exists in the working directory.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	Port        string `env:"PORT" envDefault:"3000"`
	JWTSecret   string `env:"JWT_SECRET,required"`

	// Optional admin bootstrap: seeds one admin account on first start.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// Advisory cleanup. Read-time filters are the source of truth; the
	// reaper only reclaims space.
	ReaperInterval time.Duration `env:"REAPER_INTERVAL" envDefault:"10m"`
	PresenceTTL    time.Duration `env:"PRESENCE_TTL" envDefault:"5m"`
}

func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
	}

	cfg := Config{}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	return &cfg, nil
}
