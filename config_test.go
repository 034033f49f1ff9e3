package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_MODE", "SESSION_IDLE_TIMEOUT", "SESSION_SWEEP_INTERVAL", "PARTICLE_COUNT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, time.Minute, cfg.SweepInterval)
	assert.Equal(t, 50, cfg.ParticleCount)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_IDLE_TIMEOUT", "5m")
	t.Setenv("PARTICLE_COUNT", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, 10, cfg.ParticleCount)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("negative particles", func(t *testing.T) {
		t.Setenv("PARTICLE_COUNT", "-1")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("SESSION_IDLE_TIMEOUT", "soon")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
	t.Run("zero idle timeout", func(t *testing.T) {
		t.Setenv("SESSION_IDLE_TIMEOUT", "0s")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
	t.Run("negative idle timeout", func(t *testing.T) {
		t.Setenv("SESSION_IDLE_TIMEOUT", "-5m")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
	t.Run("zero sweep interval", func(t *testing.T) {
		t.Setenv("SESSION_SWEEP_INTERVAL", "0s")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
