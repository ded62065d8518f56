package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.AI.TimeoutSeconds = 30
	return cfg
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expectOk bool
	}{
		{"Valid defaults", func(c *Config) {}, true},
		{"JSON log format", func(c *Config) { c.Log.Format = "json" }, true},
		{"Invalid log level", func(c *Config) { c.Log.Level = "verbose" }, false},
		{"Invalid log format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"AI enabled without key", func(c *Config) { c.AI.Enabled = true }, false},
		{"AI enabled with key", func(c *Config) {
			c.AI.Enabled = true
			c.AI.APIKey = "test-key"
		}, true},
		{"AI timeout out of range", func(c *Config) {
			c.AI.Enabled = true
			c.AI.APIKey = "test-key"
			c.AI.TimeoutSeconds = 0
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validTestConfig()
			tc.mutate(cfg)

			err := validateConfig(cfg)
			if tc.expectOk {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "rules.yaml", cfg.Rules.File)
	assert.Equal(t, "All Time", cfg.Analyze.Month)
	assert.Equal(t, "All", cfg.Analyze.Category)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("TESTIMONY_ANALYZE_DATE_COLUMN", "Timestamp")
	t.Setenv("TESTIMONY_RULES_FILE", "custom-rules.yaml")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "Timestamp", cfg.Analyze.DateColumn)
	assert.Equal(t, "custom-rules.yaml", cfg.Rules.File)
}

func TestInitializeConfigGeminiKeyBinding(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.AI.APIKey)
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := validTestConfig()
	cfg.Log.Level = "debug"
	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	cfg.Log.Format = "json"
	logger = ConfigureLoggingFromConfig(cfg)
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingFromConfigInvalidLevel(t *testing.T) {
	cfg := validTestConfig()
	cfg.Log.Level = "not-a-level"

	logger := ConfigureLoggingFromConfig(cfg)

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TESTIMONY_TEST_KEY", "value")

	assert.Equal(t, "value", GetEnv("TESTIMONY_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TESTIMONY_MISSING_KEY", "fallback"))
}
