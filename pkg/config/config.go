package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// ValidModels is the allow-list of Gemini model identifiers.
var ValidModels = []string{
	"gemini-2.5-flash",
	"gemini-2.5-pro",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

// ValidOutputFormats lists the supported report formats.
var ValidOutputFormats = []string{"json", "markdown", "text", "docx"}

// ValidSummaryTypes lists the supported summary styles.
var ValidSummaryTypes = []string{"detailed", "brief", "key_points", "timestamped"}

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// A .env in the working directory seeds the environment before viper
		// reads it; missing files are fine.
		_ = godotenv.Load()

		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("SUMMARIZER")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	// The Gemini key is the one setting with no workable default.
	if viper.GetString("gemini.api_key") == "" {
		return fmt.Errorf("gemini.api_key is required: set SUMMARIZER_GEMINI_API_KEY or add it to .env")
	}

	model := viper.GetString("gemini.model")
	if !contains(ValidModels, model) {
		return fmt.Errorf("invalid gemini model %q, valid models: %s", model, strings.Join(ValidModels, ", "))
	}

	summaryType := viper.GetString("defaults.summary_type")
	if !contains(ValidSummaryTypes, summaryType) {
		return fmt.Errorf("invalid summary type %q, valid types: %s", summaryType, strings.Join(ValidSummaryTypes, ", "))
	}

	format := viper.GetString("output.format")
	if !contains(ValidOutputFormats, format) {
		return fmt.Errorf("invalid output format %q, valid formats: %s", format, strings.Join(ValidOutputFormats, ", "))
	}

	if viper.GetInt("defaults.chunk_duration") <= 0 {
		return fmt.Errorf("defaults.chunk_duration must be positive")
	}

	if viper.GetInt("gemini.max_retries") <= 0 {
		return fmt.Errorf("gemini.max_retries must be positive")
	}

	if viper.GetDuration("gemini.request_timeout") <= 0 {
		return fmt.Errorf("gemini.request_timeout must be positive")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini API key is required")
	}

	if !contains(ValidModels, c.Gemini.Model) {
		return fmt.Errorf("invalid gemini model: %s", c.Gemini.Model)
	}

	if !contains(ValidSummaryTypes, c.Defaults.SummaryType) {
		return fmt.Errorf("invalid summary type: %s", c.Defaults.SummaryType)
	}

	if !contains(ValidOutputFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	if c.Defaults.ChunkDuration <= 0 {
		return fmt.Errorf("chunk duration must be positive")
	}

	if c.Gemini.MaxRetries <= 0 {
		return fmt.Errorf("max retries must be positive")
	}

	return nil
}

// CreateDirectories creates the output directory tree if missing.
func (c *Config) CreateDirectories() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	dbDir := filepath.Dir(c.Database.Path)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/reports.db")
	viper.SetDefault("database.verbose", false)

	// Gemini defaults
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.max_retries", 3)
	viper.SetDefault("gemini.request_timeout", 30*time.Second)

	// Summarization defaults
	viper.SetDefault("defaults.summary_type", "detailed")
	viper.SetDefault("defaults.chunk_duration", 60)
	viper.SetDefault("defaults.language", "en")

	// Output defaults
	viper.SetDefault("output.format", "json")
	viper.SetDefault("output.dir", "./output")
	viper.SetDefault("output.save_transcripts", true)
	viper.SetDefault("output.save_summaries", true)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
