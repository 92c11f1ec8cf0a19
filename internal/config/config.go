package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	MetricStore MetricStoreConfig
	Scheduler   SchedulerConfig
	Security    SecurityConfig
	CORS        CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// MetricStoreConfig holds configuration for the external metric index.
// When Endpoint is empty the server falls back to the local SQLite-backed
// metric store, which is populated via the import command.
type MetricStoreConfig struct {
	Endpoint  string
	APIKey    string
	IndexName string
	TopK      int
}

// SchedulerConfig holds configuration for background jobs.
type SchedulerConfig struct {
	// InsightRefreshSpec is a cron expression for the market-insight
	// snapshot job. Empty disables the job.
	InsightRefreshSpec string
}

// SecurityConfig holds encryption configuration.
type SecurityConfig struct {
	// LeadEncryptionKey is a base64url fernet key protecting lead contact
	// details at rest. Empty disables lead collection endpoints.
	LeadEncryptionKey string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/fund_advisor.db"),
		},
		MetricStore: MetricStoreConfig{
			Endpoint:  getEnv("METRICSTORE_ENDPOINT", ""),
			APIKey:    getEnv("METRICSTORE_API_KEY", ""),
			IndexName: getEnv("METRICSTORE_INDEX_NAME", "hkp-amcdata"),
			TopK:      getEnvInt("METRICSTORE_TOP_K", 100),
		},
		Scheduler: SchedulerConfig{
			InsightRefreshSpec: getEnv("INSIGHT_REFRESH_CRON", "@hourly"),
		},
		Security: SecurityConfig{
			LeadEncryptionKey: getEnv("LEAD_ENCRYPTION_KEY", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value.
// Non-numeric values fall back to the default.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
