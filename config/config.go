package config

import (
	"os"
	"strings"
)

// Config is read once at startup from the environment (.env is loaded by
// main before this runs).
type Config struct {
	Port          string
	Prod          bool
	SessionSecret string

	// Base URL of the remote booking API, e.g. "https://api.example.com/api"
	UpstreamURL string

	// Optional redis for wizard drafts; empty means in-memory drafts.
	RedisURL string

	// DemoFallback serves a built-in sample catalog when the games fetch
	// fails. Never enable for real users.
	DemoFallback bool

	DefaultLang string
	CORSOrigins []string
}

func Load() *Config {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		Prod:          os.Getenv("PROD") == "true",
		SessionSecret: getenv("SESSION_SECRET", "dev-session-secret"),
		UpstreamURL:   getenv("UPSTREAM_URL", "http://localhost:8000/api"),
		RedisURL:      os.Getenv("REDIS_URL"),
		DemoFallback:  os.Getenv("DEMO_FALLBACK") == "true",
		DefaultLang:   getenv("DEFAULT_LANG", "en"),
		CORSOrigins:   parseOrigins(os.Getenv("CORS_ORIGINS")),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
