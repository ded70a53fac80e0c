package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080},
		Gemini: GeminiConfig{
			APIKey:         "test-key",
			Model:          "gemini-1.5-flash",
			MaxRetries:     3,
			RequestTimeout: 30 * time.Second,
		},
		Defaults: DefaultsConfig{SummaryType: "detailed", ChunkDuration: 60, Language: "en"},
		Output:   OutputConfig{Format: "json", Dir: "./output"},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing API key",
			mutate:  func(c *Config) { c.Gemini.APIKey = "" },
			wantErr: "API key",
		},
		{
			name:    "invalid model",
			mutate:  func(c *Config) { c.Gemini.Model = "gpt-4" },
			wantErr: "invalid gemini model",
		},
		{
			name:    "invalid summary type",
			mutate:  func(c *Config) { c.Defaults.SummaryType = "verbose" },
			wantErr: "invalid summary type",
		},
		{
			name:    "invalid output format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "invalid output format",
		},
		{
			name:    "non-positive chunk duration",
			mutate:  func(c *Config) { c.Defaults.ChunkDuration = 0 },
			wantErr: "chunk duration",
		},
		{
			name:    "non-positive retries",
			mutate:  func(c *Config) { c.Gemini.MaxRetries = 0 },
			wantErr: "max retries",
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	assert.Equal(t, 8080, viper.GetInt("server.port"))
	assert.Equal(t, "gemini-1.5-flash", viper.GetString("gemini.model"))
	assert.Equal(t, 3, viper.GetInt("gemini.max_retries"))
	assert.Equal(t, 30*time.Second, viper.GetDuration("gemini.request_timeout"))
	assert.Equal(t, "detailed", viper.GetString("defaults.summary_type"))
	assert.Equal(t, 60, viper.GetInt("defaults.chunk_duration"))
	assert.Equal(t, "en", viper.GetString("defaults.language"))
	assert.Equal(t, "json", viper.GetString("output.format"))
	assert.True(t, viper.GetBool("output.save_transcripts"))
	assert.True(t, viper.GetBool("output.save_summaries"))
}

func TestValidateRequiresAPIKey(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	err := validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini.api_key")

	viper.Set("gemini.api_key", "test-key")
	assert.NoError(t, validate())
}

func TestValidateModelAllowList(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("gemini.api_key", "test-key")

	for _, model := range ValidModels {
		viper.Set("gemini.model", model)
		assert.NoError(t, validate(), "model %s should be valid", model)
	}

	viper.Set("gemini.model", "claude-3")
	assert.Error(t, validate())
}

func TestGetConfigUnmarshal(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()
	viper.Set("gemini.api_key", "test-key")
	viper.Set("server.port", 9090)

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, "./output", cfg.Output.Dir)
}
