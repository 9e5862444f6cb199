package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Supported storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	BotToken        string
	BotPassword     string
	SuggestionDelay time.Duration
	Storage         StorageConfig
}

// StorageConfig selects and configures the durable key-value backend
type StorageConfig struct {
	Driver     string
	Key        string
	SQLitePath string
	Database   DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads bot configuration from environment variables
func Load() (*Config, error) {
	storage, err := LoadStorage()
	if err != nil {
		return nil, err
	}

	delay, err := time.ParseDuration(getEnv("SUGGESTION_DELAY", "500ms"))
	if err != nil {
		return nil, fmt.Errorf("SUGGESTION_DELAY is invalid: %w", err)
	}

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		BotPassword:     os.Getenv("BOT_PASSWORD"),
		SuggestionDelay: delay,
		Storage:         *storage,
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}

	return cfg, nil
}

// LoadStorage reads only the storage settings, for tools that do not run the bot
func LoadStorage() (*StorageConfig, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &StorageConfig{
		Driver:     getEnv("STORAGE_DRIVER", DriverSQLite),
		Key:        getEnv("STORAGE_KEY", "vocabulary-layers"),
		SQLitePath: getEnv("SQLITE_PATH", "vocabulary.db"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vocabulary"),
			User:     getEnv("DB_USER", "vocabulary"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	switch cfg.Driver {
	case DriverPostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for postgres storage")
		}
	case DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER %q is not supported", cfg.Driver)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *StorageConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
