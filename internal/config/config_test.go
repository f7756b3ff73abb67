package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := InitializeConfig()
	require.NoError(t, err)
	return cfg
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, 2, cfg.Dedup.ToleranceDays)
	assert.False(t, cfg.Enrichment.Enabled)
	assert.Equal(t, 3*time.Second, cfg.EnrichmentTimeout())
	assert.Empty(t, cfg.Rules.KeywordsFile)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Setenv("FINPIPE_LOG_LEVEL", "debug")
	t.Setenv("FINPIPE_DEDUP_TOLERANCE_DAYS", "5")
	t.Setenv("FINPIPE_ENRICH_API_URL", "https://example.test/classify")
	t.Setenv("FINPIPE_ENRICH_API_KEY", "secret")

	cfg := defaultConfig(t)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Dedup.ToleranceDays)
	assert.Equal(t, "https://example.test/classify", cfg.Enrichment.URL)
	assert.Equal(t, "secret", cfg.Enrichment.APIKey)
}

func TestInitializeConfigEnrichmentEnabledRequiresCredentials(t *testing.T) {
	t.Setenv("FINPIPE_ENRICHMENT_ENABLED", "true")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enrichment")
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.CSV.Delimiter = ","
		cfg.Dedup.ToleranceDays = 2
		cfg.Enrichment.TimeoutSeconds = 3
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid defaults", func(c *Config) {}, false},
		{"Bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"Bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"Multi-character delimiter", func(c *Config) { c.CSV.Delimiter = ",;" }, true},
		{"Negative tolerance", func(c *Config) { c.Dedup.ToleranceDays = -1 }, true},
		{"Enrichment enabled without key", func(c *Config) {
			c.Enrichment.Enabled = true
			c.Enrichment.URL = "https://example.test"
		}, true},
		{"Enrichment timeout out of range", func(c *Config) {
			c.Enrichment.Enabled = true
			c.Enrichment.URL = "https://example.test"
			c.Enrichment.APIKey = "secret"
			c.Enrichment.TimeoutSeconds = 90
		}, true},
		{"Enrichment fully configured", func(c *Config) {
			c.Enrichment.Enabled = true
			c.Enrichment.URL = "https://example.test"
			c.Enrichment.APIKey = "secret"
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			err := validateConfig(cfg)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigureLogging(t *testing.T) {
	cfg := defaultConfig(t)
	logger := ConfigureLogging(cfg)
	assert.NotNil(t, logger)
}
