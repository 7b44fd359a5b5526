package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.Production())
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.NotEmpty(t, cfg.FrontendOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_TTL_HOURS", "48")
	t.Setenv("FRONTEND_ORIGINS", "https://bank.example.com, https://staging.example.com")

	cfg := Load()

	assert.True(t, cfg.Production())
	assert.Equal(t, 48*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"https://bank.example.com", "https://staging.example.com"}, cfg.FrontendOrigins)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "not-a-number")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
