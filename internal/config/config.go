package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port            int           `json:"port"`
	Environment     string        `json:"environment"`
	ReadTimeout     time.Duration `json:"server_read_timeout"`
	WriteTimeout    time.Duration `json:"server_write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// CORS configuration
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
	// Fraction of new traces kept, between 0 and 1
	TracingSampleRatio float64 `json:"tracing_sample_ratio"`

	// Form submit rate limiting
	FormRateLimitPerMinute int `json:"form_rate_limit_per_minute"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is read first when present; it never overrides
// variables already set.
func LoadConfig() error {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnvOrDefault("SERVER_READ_TIMEOUT", "15s"))
	if err != nil {
		return fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnvOrDefault("SERVER_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(getEnvOrDefault("SHUTDOWN_TIMEOUT", "30s"))
	if err != nil {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	sampleRatio, err := strconv.ParseFloat(getEnvOrDefault("TRACING_SAMPLE_RATIO", "1"), 64)
	if err != nil {
		return fmt.Errorf("invalid TRACING_SAMPLE_RATIO: %w", err)
	}
	if sampleRatio < 0 || sampleRatio > 1 {
		return fmt.Errorf("invalid TRACING_SAMPLE_RATIO: must be between 0 and 1, got %g", sampleRatio)
	}

	formRateLimit, err := strconv.Atoi(getEnvOrDefault("FORM_RATE_LIMIT_PER_MINUTE", "120"))
	if err != nil {
		return fmt.Errorf("invalid FORM_RATE_LIMIT_PER_MINUTE: %w", err)
	}
	if formRateLimit <= 0 {
		return fmt.Errorf("invalid FORM_RATE_LIMIT_PER_MINUTE: must be positive, got %d", formRateLimit)
	}

	origins := parseCommaSeparatedList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	AppConfig = &Config{
		// Server configuration
		Port:            port,
		Environment:     getEnvOrDefault("ENVIRONMENT", "development"),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,

		CORSAllowedOrigins: origins,

		// Tracing configuration
		TracingEnabled:     tracingEnabled,
		TracingEndpoint:    getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
		TracingSampleRatio: sampleRatio,

		FormRateLimitPerMinute: formRateLimit,
	}

	return nil
}

// AllowsAllOrigins reports whether CORS is configured with the "*" wildcard
func (c *Config) AllowsAllOrigins() bool {
	for _, o := range c.CORSAllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// parseCommaSeparatedList splits a comma separated value, dropping blanks
func parseCommaSeparatedList(value string) []string {
	result := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
