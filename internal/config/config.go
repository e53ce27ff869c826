// Package config provides configuration for the invoice engine.
// Precedence: environment variables (INVOICE_*) > config file > defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime settings.
type Config struct {
	// Port the HTTP server listens on
	Port string

	// UploadDir holds per-request logo uploads
	UploadDir string

	// OutputDir holds generated documents until the response is sent
	OutputDir string

	// FontPath is the TTF used for rendering; empty means search the
	// system font locations
	FontPath string

	// MaxUploadBytes bounds the logo size
	MaxUploadBytes int64

	// LogLevel controls logging verbosity (debug, info, warn, error)
	LogLevel string

	// LogFormat is "console" or "json"
	LogFormat string
}

// Load reads configuration from the environment and an optional
// invoice-engine.yaml in the working directory.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "3000")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("output_dir", "output")
	v.SetDefault("font_path", "")
	v.SetDefault("max_upload_bytes", int64(5<<20))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	v.SetEnvPrefix("INVOICE")
	v.AutomaticEnv()

	v.SetConfigName("invoice-engine")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Port:           v.GetString("port"),
		UploadDir:      v.GetString("upload_dir"),
		OutputDir:      v.GetString("output_dir"),
		FontPath:       v.GetString("font_path"),
		MaxUploadBytes: v.GetInt64("max_upload_bytes"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
	}

	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("max_upload_bytes must be positive, got %d", cfg.MaxUploadBytes)
	}

	return cfg, nil
}
