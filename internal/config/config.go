package config

import (
	"fmt"
	"os"

	"facture/internal/logger"
)

type Config struct {
	// Output Configuration
	OutputDir string

	// Currency Configuration
	Currency       string
	CurrencyLocale string

	// Address Book Configuration
	ProviderFile string
	ClientsFile  string
	ItemsFile    string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		OutputDir:      getEnv("FACTURE_OUTPUT_DIR", "factures"),
		Currency:       getEnv("FACTURE_CURRENCY", "€"),
		CurrencyLocale: getEnv("FACTURE_CURRENCY_LOCALE", "fr-FR"),
		ProviderFile:   getEnv("FACTURE_PROVIDER_FILE", "provider.yaml"),
		ClientsFile:    getEnv("FACTURE_CLIENTS_FILE", "clients.yaml"),
		ItemsFile:      getEnv("FACTURE_ITEMS_FILE", "items.yaml"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:  getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:      getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("FACTURE_OUTPUT_DIR must not be empty")
	}
	if c.Currency == "" {
		return fmt.Errorf("FACTURE_CURRENCY must not be empty")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
