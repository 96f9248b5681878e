package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("WEBSITE", "https://app.example")
	t.Setenv("WALLETSESSION_VERIFY_DELAY", "250ms")
	t.Setenv("WALLETSESSION_CHAIN_ID", "137")
	t.Setenv("WALLETSESSION_CONNECTORS", "injected")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://app.example", cfg.WebsiteURL)
	assert.Equal(t, 250*time.Millisecond, cfg.VerifyDelay)
	assert.Equal(t, int64(137), cfg.ChainID)
	assert.Equal(t, []string{"injected"}, cfg.Connectors)
	// untouched
	assert.Equal(t, "http://127.0.0.1:8080", cfg.BackendURL)
}

func TestParseEnv_BadValuePanics(t *testing.T) {
	t.Setenv("WALLETSESSION_VERIFY_DELAY", "soon")

	var cfg Config
	require.Panics(t, func() { parseEnv(&cfg) })
}
