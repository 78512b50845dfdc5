package config

import (
	"os"
	"strings"
)

// Config carries the process-level server settings. Everything the core
// computes is request-scoped; only the bind port and CORS origins come
// from the environment.
type Config struct {
	Port           string
	AllowedOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
