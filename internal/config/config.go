// Package config provides Viper-based hierarchical configuration management:
// defaults, an optional config file, then FINPIPE_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"lmercier/finpipe/internal/logging"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Dedup struct {
		ToleranceDays int `mapstructure:"tolerance_days" yaml:"tolerance_days"`
	} `mapstructure:"dedup" yaml:"dedup"`

	Enrichment struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		URL            string `mapstructure:"url" yaml:"url"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize the credential
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"enrichment" yaml:"enrichment"`

	Rules struct {
		KeywordsFile string `mapstructure:"keywords_file" yaml:"keywords_file"`
		FuzzyFile    string `mapstructure:"fuzzy_file" yaml:"fuzzy_file"`
	} `mapstructure:"rules" yaml:"rules"`
}

// EnrichmentTimeout returns the configured enrichment timeout as a duration.
func (c *Config) EnrichmentTimeout() time.Duration {
	return time.Duration(c.Enrichment.TimeoutSeconds) * time.Second
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finpipe")
	v.AddConfigPath(".finpipe")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINPIPE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars on a broken file.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The bearer credential always comes from the environment, unprefixed
	// by the replacer scheme.
	if err := v.BindEnv("enrichment.api_key", "FINPIPE_ENRICH_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind FINPIPE_ENRICH_API_KEY environment variable: %v\n", err)
	}
	if err := v.BindEnv("enrichment.url", "FINPIPE_ENRICH_API_URL"); err != nil {
		fmt.Printf("Warning: failed to bind FINPIPE_ENRICH_API_URL environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("dedup.tolerance_days", 2)

	v.SetDefault("enrichment.enabled", false)
	v.SetDefault("enrichment.url", "")
	v.SetDefault("enrichment.timeout_seconds", 3)

	v.SetDefault("rules.keywords_file", "")
	v.SetDefault("rules.fuzzy_file", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Dedup.ToleranceDays < 0 {
		return fmt.Errorf("dedup.tolerance_days must be >= 0, got: %d", config.Dedup.ToleranceDays)
	}

	if config.Enrichment.Enabled {
		if config.Enrichment.URL == "" || config.Enrichment.APIKey == "" {
			return fmt.Errorf("enrichment.url and FINPIPE_ENRICH_API_KEY required when enrichment is enabled")
		}
		if config.Enrichment.TimeoutSeconds < 1 || config.Enrichment.TimeoutSeconds > 60 {
			return fmt.Errorf("enrichment.timeout_seconds must be between 1 and 60, got: %d", config.Enrichment.TimeoutSeconds)
		}
	}

	return nil
}

// ConfigureLogging builds the application logger from the Config.
func ConfigureLogging(config *Config) logging.Logger {
	logger := logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
	logging.SetDefaultLogger(logger)
	return logger
}
