package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// Config is read from the environment, with .env loaded first when present.
type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	LogMode       string        `env:"LOG_MODE" envDefault:"dev"`
	IdleTimeout   time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	ParticleCount int           `env:"PARTICLE_COUNT" envDefault:"50"`
}

// LoadConfig parses the environment and rejects values the server cannot run with.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ParticleCount < 0 {
		return Config{}, fmt.Errorf("PARTICLE_COUNT must not be negative, got %d", cfg.ParticleCount)
	}
	if cfg.IdleTimeout <= 0 {
		return Config{}, fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive, got %s", cfg.IdleTimeout)
	}
	if cfg.SweepInterval <= 0 {
		return Config{}, fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive, got %s", cfg.SweepInterval)
	}
	return cfg, nil
}
