package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_DSN", "LLM_PROVIDER", "SCRAPE_DELAY"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, 5*time.Second, cfg.ScrapeDelay)
	assert.Contains(t, cfg.ScrapeListingURL, "samsung-phones")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("LLM_PROVIDER", "Anthropic")
	t.Setenv("SCRAPE_DELAY", "2s")

	cfg := Load()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "anthropic", cfg.LLMProvider, "provider name is lowercased")
	assert.Equal(t, 2*time.Second, cfg.ScrapeDelay)
}

func TestEnvDuration(t *testing.T) {
	t.Setenv("X_DELAY", "750ms")
	assert.Equal(t, 750*time.Millisecond, envDuration("X_DELAY", time.Second))

	t.Setenv("X_DELAY", "3")
	assert.Equal(t, 3*time.Second, envDuration("X_DELAY", time.Second), "bare numbers are seconds")

	t.Setenv("X_DELAY", "junk")
	assert.Equal(t, time.Second, envDuration("X_DELAY", time.Second))

	t.Setenv("X_DELAY", "")
	assert.Equal(t, time.Second, envDuration("X_DELAY", time.Second))
}
