package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	LogOutputStderr  = "stderr"
	LogOutputStdout  = "stdout"
	LogOutputDiscard = "discard"
)

// AppConfig holds all configuration for the application.
// Record data is never configured; only diagnostics are.
type AppConfig struct {
	LogLevel    string
	Environment string
	LogOutput   string // Where diagnostic logs go; stdout carries the menus
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// A missing .env is fine; variables already set in the environment win.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn" // Keep the interactive session quiet by default
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.LogOutput = strings.ToLower(os.Getenv("LOG_OUTPUT"))
	switch cfg.LogOutput {
	case "":
		cfg.LogOutput = LogOutputStderr
	case LogOutputStderr, LogOutputStdout, LogOutputDiscard:
	default:
		return nil, fmt.Errorf("invalid LOG_OUTPUT %q: want %s, %s or %s", cfg.LogOutput, LogOutputStderr, LogOutputStdout, LogOutputDiscard)
	}

	return cfg, nil
}
