package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Gemini      GeminiConfig   `mapstructure:"gemini"`
	Defaults    DefaultsConfig `mapstructure:"defaults"`
	Output      OutputConfig   `mapstructure:"output"`
	Logging     LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains report history database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// GeminiConfig contains Gemini API settings
type GeminiConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	Model          string        `mapstructure:"model"`
	MaxRetries     int           `mapstructure:"max_retries"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// DefaultsConfig contains per-request defaults used when a request omits them
type DefaultsConfig struct {
	SummaryType   string `mapstructure:"summary_type"`
	ChunkDuration int    `mapstructure:"chunk_duration"`
	Language      string `mapstructure:"language"`
}

// OutputConfig contains report persistence settings
type OutputConfig struct {
	Format          string `mapstructure:"format"`
	Dir             string `mapstructure:"dir"`
	SaveTranscripts bool   `mapstructure:"save_transcripts"`
	SaveSummaries   bool   `mapstructure:"save_summaries"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
