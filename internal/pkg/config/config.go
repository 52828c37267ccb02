package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type AuthConfig struct {
	Required     bool
	JWTSecret    string
	TokenTTL     time.Duration
	DemoPassword string
}

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	PprofAddr    string
	OTELEndpoint string
}

type ShellConfig struct {
	Version            string
	SupportedLanguages []string
	SessionSecret      string
	NavCacheTTL        time.Duration
}

type Config struct {
	ServerPort    string
	Environment   string
	LogLevel      string
	Auth          AuthConfig
	Observability ObservabilityConfig
	Shell         ShellConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:  getEnvOrDefault("SERVER_PORT", "8091"),
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		Auth: AuthConfig{
			Required:     getEnvAsBool("AUTH_REQUIRED", true),
			JWTSecret:    getEnvOrDefault("JWT_SECRET_KEY", ""),
			TokenTTL:     getEnvAsDuration("JWT_TTL", 24*time.Hour),
			DemoPassword: getEnvOrDefault("DEMO_PASSWORD", "foresight"),
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("SERVICE_NAME", "foresight-shell"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			PprofAddr:    getEnvOrDefault("PPROF_ADDR", ":6060"),
			OTELEndpoint: getEnvOrDefault("OTEL_ENDPOINT", "otel-collector:4318"),
		},
		Shell: ShellConfig{
			Version:            getEnvOrDefault("APP_VERSION", "2.5.0"),
			SupportedLanguages: splitList(getEnvOrDefault("SUPPORTED_LANGUAGES", "en,ar")),
			SessionSecret:      getEnvOrDefault("SESSION_SECRET", ""),
			NavCacheTTL:        getEnvAsDuration("NAV_CACHE_TTL", 5*time.Minute),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is required in production")
		}
		cfg.Auth.JWTSecret = "default-secret-key-change-in-production-min-32-chars"
	}
	if cfg.Shell.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET environment variable is required in production")
		}
		cfg.Shell.SessionSecret = "default-session-secret-change-me"
	}
	if len(cfg.Shell.SupportedLanguages) == 0 {
		return nil, fmt.Errorf("SUPPORTED_LANGUAGES must list at least one language")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
