// Package config centralizes environment-driven configuration for the
// phone advisor. Values are read once at startup from the process
// environment, optionally seeded from a .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr   = ":8080"
	defaultDSN    = "postgres://localhost/phones?sslmode=disable"
	defaultDelay  = 5 * time.Second
	defaultModel  = "" // provider-specific default chosen in internal/llm

	// GSMArena endpoints used by the scraper.
	defaultBaseURL    = "https://www.gsmarena.com/"
	defaultListingURL = "https://www.gsmarena.com/samsung-phones-9.php"
	defaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Config holds all runtime configuration.
type Config struct {
	Addr string
	DSN  string

	LLMProvider string
	LLMAPIKey   string
	LLMModel    string
	LLMBaseURL  string

	FewShotPath string

	ScrapeBaseURL    string
	ScrapeListingURL string
	ScrapeUserAgent  string
	ScrapeDelay      time.Duration

	Debug bool
}

// Load reads configuration from .env (if present) and the environment.
func Load() *Config {
	_ = godotenv.Load() // loads .env if present, silently ignores if not

	return &Config{
		Addr: env("ADDR", defaultAddr),
		DSN:  env("DB_DSN", defaultDSN),

		LLMProvider: strings.ToLower(env("LLM_PROVIDER", "openai")),
		LLMAPIKey:   os.Getenv("LLM_API_KEY"),
		LLMModel:    env("LLM_MODEL", defaultModel),
		LLMBaseURL:  os.Getenv("LLM_BASE_URL"),

		FewShotPath: env("FEW_SHOT_PATH", "few_shot.json"),

		ScrapeBaseURL:    env("SCRAPE_BASE_URL", defaultBaseURL),
		ScrapeListingURL: env("SCRAPE_LISTING_URL", defaultListingURL),
		ScrapeUserAgent:  env("SCRAPE_USER_AGENT", defaultUserAgent),
		ScrapeDelay:      envDuration("SCRAPE_DELAY", defaultDelay),
	}
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// Bare numbers are treated as seconds.
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
