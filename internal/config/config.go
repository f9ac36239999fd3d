// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:8081"] (Expo web dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// JWTSecret signs and verifies bearer tokens. Required.
	JWTSecret string

	// TokenTTL is the lifetime of issued bearer tokens. Defaults to 24h.
	TokenTTL time.Duration

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// RedisURL enables the preference cache when set, e.g. "redis://localhost:6379/0".
	RedisURL string

	// PreferenceCacheTTL is how long cached preferences live. Defaults to 10m.
	PreferenceCacheTTL time.Duration

	// MQTTBrokerURL enables invitation notifications when set, e.g. "tcp://localhost:1883".
	MQTTBrokerURL string

	// MQTTTopicPrefix is prepended to every published topic. Defaults to "sidequest".
	MQTTTopicPrefix string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "http://localhost:8081")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("PREFERENCE_CACHE_TTL", "10m")
	v.SetDefault("MQTT_TOPIC_PREFIX", "sidequest")

	cfg := Config{
		Port:               v.GetString("PORT"),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		CORSOrigins:        splitCSV(v.GetString("CORS_ORIGINS")),
		JWTSecret:          v.GetString("JWT_SECRET"),
		TokenTTL:           v.GetDuration("TOKEN_TTL"),
		MaxBodyBytes:       v.GetInt64("MAX_BODY_BYTES"),
		RedisURL:           v.GetString("REDIS_URL"),
		PreferenceCacheTTL: v.GetDuration("PREFERENCE_CACHE_TTL"),
		MQTTBrokerURL:      v.GetString("MQTT_BROKER_URL"),
		MQTTTopicPrefix:    v.GetString("MQTT_TOPIC_PREFIX"),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be a positive duration, got %q", v.GetString("TOKEN_TTL"))
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be positive, got %q", v.GetString("MAX_BODY_BYTES"))
	}

	return cfg, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
