// Package config loads application settings from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the application.
type Config struct {
	Environment string `mapstructure:"APP_ENV"`
	ServerPort  string `mapstructure:"SERVER_PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MigrationsDir string `mapstructure:"MIGRATIONS_DIR"`

	JWTSecret        string `mapstructure:"JWT_SECRET"`
	JWTExpiryMinutes int    `mapstructure:"JWT_EXPIRY_MINUTES"`

	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	RateLimitPerMinute int      `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	CORSAllowedOrigins []string `mapstructure:"-"`
	SwaggerEnabled     bool     `mapstructure:"SWAGGER_ENABLED"`

	PostHogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	PostHogEndpoint string `mapstructure:"POSTHOG_ENDPOINT"`
}

// JWTExpiry returns the configured token lifetime.
func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryMinutes) * time.Minute
}

// LoadConfig reads settings from the environment. A .env file in the
// working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("JWT_EXPIRY_MINUTES", 60)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.SetDefault("SWAGGER_ENABLED", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_ENDPOINT", "https://us.i.posthog.com")

	// AutomaticEnv alone does not populate Unmarshal; bind each key explicitly.
	keys := []string{
		"APP_ENV", "SERVER_PORT", "LOG_LEVEL", "DATABASE_URL", "MIGRATIONS_DIR",
		"JWT_SECRET", "JWT_EXPIRY_MINUTES",
		"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_REDIRECT_URL",
		"RATE_LIMIT_PER_MINUTE", "SWAGGER_ENABLED",
		"POSTHOG_API_KEY", "POSTHOG_ENDPOINT",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", key, err)
		}
	}
	_ = v.BindEnv("CORS_ALLOWED_ORIGINS")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.CORSAllowedOrigins = splitAndTrim(v.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return &cfg, nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
