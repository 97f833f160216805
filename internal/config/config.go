package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultMapsBaseURL = "https://www.google.com/maps/dir"
	DefaultRedisStream = "dispatch:events"
)

// Runtime settings, read from the environment (optionally populated from .env).
type Config struct {
	Port        string
	Env         string
	SeedPath    string
	MapsBaseURL string
	DatabaseURL string
	RedisAddr   string
	RedisStream string
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func Load() (Config, error) {
	cfg := Config{
		Port:        Get("PORT", "8080"),
		Env:         Get("APP_ENV", "production"),
		SeedPath:    Get("SEED_PATH", ""),
		MapsBaseURL: strings.TrimRight(Get("MAPS_BASE_URL", DefaultMapsBaseURL), "/"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisAddr:   Get("REDIS_ADDR", ""),
		RedisStream: Get("REDIS_STREAM", DefaultRedisStream),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	if !strings.HasPrefix(c.MapsBaseURL, "http://") && !strings.HasPrefix(c.MapsBaseURL, "https://") {
		return errors.New("MAPS_BASE_URL must be an http(s) URL")
	}
	return nil
}
