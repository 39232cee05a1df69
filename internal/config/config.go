package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds service configuration. Everything comes from the process
// environment; an optional .env file in the working directory is loaded
// first. No config files beyond that, no CLI flags.
type Config struct {
	Port       string
	AppVersion string
	LogLevel   string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	// Best-effort; absence of .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		AppVersion:      getEnv("APP_VERSION", "1.0.0"),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("PORT must be a valid port number, got %q", cfg.Port)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDuration parses a duration env var, falling back to defaultValue
// on empty input, parse error, or a non-positive result.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
