package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dotcommander/passaudit/internal/types"
)

// Config represents the passaudit configuration
type Config struct {
	Format      string   `mapstructure:"format"`
	Output      string   `mapstructure:"output"`
	FailBelow   string   `mapstructure:"failBelow"`
	Quiet       bool     `mapstructure:"quiet"`
	Verbose     bool     `mapstructure:"verbose"`
	Policy      string   `mapstructure:"policy"`
	Wordlists   []string `mapstructure:"wordlists"`
	Dictionary  string   `mapstructure:"dictionary"`
	History     string   `mapstructure:"history"`
	Concurrency int      `mapstructure:"concurrency"`
}

// LoadConfig loads configuration from rc files, environment, and defaults.
func LoadConfig() (*Config, error) {
	homeDir, _ := os.UserHomeDir()
	viper.SetDefault("format", "console")
	viper.SetDefault("failBelow", types.LabelWeak)
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("dictionary", "/usr/share/dict/words")
	viper.SetDefault("history", filepath.Join(homeDir, ".passaudit_history"))
	viper.SetDefault("concurrency", 10)

	// Config file locations: cwd first, then home
	var configPaths []string
	for _, name := range []string{".passauditrc.json", ".passauditrc.yaml", ".passauditrc.yml"} {
		configPaths = append(configPaths, name, filepath.Join(homeDir, name))
	}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// Environment variables
	viper.SetEnvPrefix("PASSAUDIT")
	viper.AutomaticEnv()

	// Create config instance
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	// Validate format
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	// Validate fail-below label
	if types.LabelRank(config.FailBelow) < 0 {
		return fmt.Errorf("invalid fail-below label: %s", config.FailBelow)
	}

	// Validate concurrency
	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	return nil
}
