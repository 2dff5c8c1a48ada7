package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alem-hub/student-roster/internal/domain/student"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Roster behaviour
	Roster RosterConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Version     string
}

// RosterConfig holds roster-specific settings.
type RosterConfig struct {
	// File to load before the interactive session starts (optional).
	File string

	// Minimum average grade for "select" without an explicit threshold.
	SelectThreshold float64
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	// Logging
	LogLevel string // debug, info, warn, error
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	roster, err := loadRosterConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.App = loadAppConfig()
	cfg.Roster = roster
	cfg.Observability = loadObservabilityConfig()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func loadAppConfig() AppConfig {
	return AppConfig{
		Name:        getEnv("APP_NAME", "student-roster"),
		Environment: Environment(getEnv("APP_ENV", string(EnvDevelopment))),
		Version:     getEnv("APP_VERSION", "0.1.0"),
	}
}

func loadRosterConfig() (RosterConfig, error) {
	threshold, err := getEnvFloat("ROSTER_SELECT_THRESHOLD", student.DefaultThreshold)
	if err != nil {
		return RosterConfig{}, err
	}

	return RosterConfig{
		File:            getEnv("ROSTER_FILE", ""),
		SelectThreshold: threshold,
	}, nil
}

func loadObservabilityConfig() ObservabilityConfig {
	// The tool is interactive: anything below warn would drown the prompt.
	return ObservabilityConfig{
		LogLevel: getEnv("LOG_LEVEL", "warn"),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch c.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		errs = append(errs, fmt.Sprintf("APP_ENV must be %q or %q, got %q",
			EnvDevelopment, EnvProduction, c.App.Environment))
	}

	if math.IsNaN(c.Roster.SelectThreshold) || math.IsInf(c.Roster.SelectThreshold, 0) {
		errs = append(errs, "ROSTER_SELECT_THRESHOLD must be a finite number")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, val)
	}
	return f, nil
}
