// Package config reads server settings from the environment (and .env).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/elchananT/personal-coach-demo-website/internal/booking"
)

// DefaultSessionSecret is the development fallback for SESSION_SECRET. It is
// public, so it is refused whenever staff login is enabled.
const DefaultSessionSecret = "dev-secret-change-in-production-32bytes"

// Config is the server configuration.
type Config struct {
	Addr        string
	DatabaseURL string // empty selects the in-memory booking store
	FrontendURL string // CORS origin for the JSON API

	SessionSecret string
	AdminPassword string // empty disables staff login
	SecureCookies bool

	ContentFile  string // empty uses the built-in copy
	LegalDocsDir string // empty uses the built-in legal documents

	SubmitDelay time.Duration
	RateLimit   int // booking submissions per client IP per minute

	LogLevel string
}

// Load reads .env (if present) and the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv. Malformed values are reported with the
// variable name.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:          or(getenv("ADDR"), ":8080"),
		DatabaseURL:   getenv("DATABASE_URL"),
		FrontendURL:   or(getenv("FRONTEND_URL"), "http://localhost:8080"),
		SessionSecret: or(getenv("SESSION_SECRET"), DefaultSessionSecret),
		AdminPassword: getenv("ADMIN_PASSWORD"),
		ContentFile:   getenv("CONTENT_FILE"),
		LegalDocsDir:  getenv("LEGAL_DOCS_DIR"),
		SubmitDelay:   booking.DefaultSubmitDelay,
		RateLimit:     10,
		LogLevel:      getenv("LOG_LEVEL"),
	}

	if v := getenv("BOOKING_SUBMIT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("config: BOOKING_SUBMIT_DELAY=%q: must be a non-negative duration", v)
		}
		cfg.SubmitDelay = d
	}

	if v := getenv("BOOKING_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("config: BOOKING_RATE_LIMIT=%q: must be a positive integer", v)
		}
		cfg.RateLimit = n
	}

	if v := getenv("SECURE_COOKIES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: SECURE_COOKIES=%q: %w", v, err)
		}
		cfg.SecureCookies = b
	}

	if cfg.AdminPassword != "" && cfg.SessionSecret == DefaultSessionSecret {
		return Config{}, fmt.Errorf("config: SESSION_SECRET must be set to a private value when ADMIN_PASSWORD is set")
	}

	return cfg, nil
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
