package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the API server
type Config struct {
	// Database
	DatabaseURL string

	// Server
	Port        string
	CORSOrigins []string
	Env         string
}

// ClientConfig holds configuration for the dashboard client
type ClientConfig struct {
	APIBaseURL string
	Username   string
	PrefsPath  string
}

// Load reads server configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:         getEnv("ENV", "development"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadClient reads dashboard client configuration from environment variables
func LoadClient() (*ClientConfig, error) {
	_ = godotenv.Load()

	prefsPath := getEnv("LOCALFLOW_PREFS", "")
	if prefsPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		prefsPath = filepath.Join(home, ".localflow", "prefs.json")
	}

	return &ClientConfig{
		APIBaseURL: getEnv("LOCALFLOW_API_URL", "http://localhost:8080"),
		Username:   getEnv("LOCALFLOW_USERNAME", ""),
		PrefsPath:  prefsPath,
	}, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
