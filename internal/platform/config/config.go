package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backend selectors.
const (
	StorageMemory = "memory"
	StoragePgsql  = "pgsql"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	StorageBackend     string
	IsProduction       bool
	EnableDBCheck      bool
	RateLimitPerMinute int64
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables win over .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("STORAGE_BACKEND", StorageMemory)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		StorageBackend:     viper.GetString("STORAGE_BACKEND"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		RateLimitPerMinute: viper.GetInt64("RATE_LIMIT_PER_MINUTE"),
	}

	switch cfg.StorageBackend {
	case StorageMemory:
		// No database needed.
	case StoragePgsql:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORAGE_BACKEND is %q", StoragePgsql)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	if cfg.RateLimitPerMinute <= 0 {
		log.Printf("Warning: invalid RATE_LIMIT_PER_MINUTE (%d). Defaulting to 120.\n", cfg.RateLimitPerMinute)
		cfg.RateLimitPerMinute = 120
	}

	return cfg, nil
}
