// Package config loads configuration for the intervaltree demo CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidMetricsPort = errors.New("invalid metrics port")
	ErrInvalidLogLevel    = errors.New("invalid log level")
)

// Default configuration values.
const (
	defaultMetricsPort = 9090
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	maxPort            = 65535
)

// Config holds all configuration for the demo CLI.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"`
	Environment string `mapstructure:"environment"`
}

// MetricsConfig holds the Prometheus scrape endpoint configuration.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// LoadConfig loads configuration from file and environment variables.
// configPath may be empty, in which case viper searches the usual local
// locations and falls back to defaults if nothing is found.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("intervaltree")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("/etc/intervaltree")
	}

	viperCfg.SetEnvPrefix("INTERVALTREE")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config

	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("logging.level", defaultLogLevel)
	viperCfg.SetDefault("logging.format", defaultLogFormat)
	viperCfg.SetDefault("metrics.enabled", false)
	viperCfg.SetDefault("metrics.port", defaultMetricsPort)
}

func validateConfig(cfg *Config) error {
	if cfg.Metrics.Port <= 0 || cfg.Metrics.Port > maxPort {
		return fmt.Errorf("%w: %d", ErrInvalidMetricsPort, cfg.Metrics.Port)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Logging.Level)
	}

	return nil
}
