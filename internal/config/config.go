package config

import (
	"os"
	"strconv"

	"drawcast/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig `validate:"required"`
	Server   ServerConfig   `validate:"required"`
	Engine   EngineConfig   `validate:"required"`
	Paths    PathConfig
	Ops      OpsConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string `validate:"required"`
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string `validate:"required"`
	GinMode string
}

// EngineConfig holds the prediction engine tunables
type EngineConfig struct {
	Alpha           float64
	Beta            float64
	ActualWeight    float64
	PredictedWeight float64
	// PredictedCoOccurrence lets stored guesses feed the pair matrix
	PredictedCoOccurrence bool
	// Seed fixes the RNG for reproducible predictions; 0 means random
	Seed int64
}

// PathConfig holds file system paths
type PathConfig struct {
	// HistoryFile is an optional xlsx/csv file to import at startup
	HistoryFile string
}

// OpsConfig holds the operational endpoint settings
type OpsConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}
	config.Database = *dbConfig

	config.Server = *loadServerConfig()
	config.Engine = *loadEngineConfig()
	config.Paths = *loadPathConfig()
	config.Ops = *loadOpsConfig()

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}
	return &DatabaseConfig{URL: url}, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadEngineConfig() *EngineConfig {
	return &EngineConfig{
		Alpha:                 getEnvFloatOrDefault("ALPHA", 1.0),
		Beta:                  getEnvFloatOrDefault("BETA", 0.05),
		ActualWeight:          getEnvFloatOrDefault("ACTUAL_WEIGHT", 2),
		PredictedWeight:       getEnvFloatOrDefault("PREDICTED_WEIGHT", 1),
		PredictedCoOccurrence: getEnvBoolOrDefault("PREDICTED_CO_OCCURRENCE", false),
		Seed:                  getEnvInt64OrDefault("RNG_SEED", 0),
	}
}

func loadPathConfig() *PathConfig {
	return &PathConfig{
		HistoryFile: getEnvOrDefault("HISTORY_FILE", ""),
	}
}

func loadOpsConfig() *OpsConfig {
	return &OpsConfig{
		Port:    getEnvOrDefault("OPS_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("OPS_ENABLED", true),
	}
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("database URL is required")
	}
	if config.Engine.Alpha <= 0 {
		return errors.ConfigInvalid("ALPHA must be > 0")
	}
	if config.Engine.Beta < 0 {
		return errors.ConfigInvalid("BETA must be >= 0")
	}
	if config.Engine.ActualWeight < 0 || config.Engine.PredictedWeight < 0 {
		return errors.ConfigInvalid("evidence weights must be >= 0")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
