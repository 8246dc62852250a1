package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/workforce-engine/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "json", cfg.Backend)
	assert.Equal(t, "./data/daily_staff.json", cfg.SchedulePath)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("WORKFORCE_BACKEND", "sqlite")
	t.Setenv("WORKFORCE_DB_PATH", "/tmp/test.db")
	t.Setenv("READ_TIMEOUT", "30")

	cfg := config.Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
}

func TestLoad_NonNumericPort_FallsBackToDefault(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := config.Load()
	assert.Equal(t, 8080, cfg.Port)
}
