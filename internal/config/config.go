package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// configVersion is the current configuration schema version
const configVersion = 1

// Config represents the complete application configuration
type Config struct {
	Version int    `json:"version" mapstructure:"version"`
	DataDir string `json:"dataDir" mapstructure:"dataDir"`

	AutoSave AutoSaveConfig `json:"autoSave" mapstructure:"autoSave"`
	Export   ExportConfig   `json:"export" mapstructure:"export"`
	Defaults DefaultsConfig `json:"defaults" mapstructure:"defaults"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// AutoSaveConfig contains the debounced save settings
type AutoSaveConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
	DelayMs int  `json:"delayMs" mapstructure:"delayMs"`
}

// ExportConfig contains export and backup settings
type ExportConfig struct {
	Compress  bool   `json:"compress" mapstructure:"compress"`
	Directory string `json:"directory" mapstructure:"directory"`
}

// DefaultsConfig contains values pre-filled into new protocols
type DefaultsConfig struct {
	Depot      string `json:"depot" mapstructure:"depot"`
	Location   string `json:"location" mapstructure:"location"`
	LegalBasis string `json:"legalBasis" mapstructure:"legalBasis"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: configVersion,
		DataDir: ".",
		AutoSave: AutoSaveConfig{
			Enabled: true,
			DelayMs: 2000,
		},
		Export: ExportConfig{
			Compress:  false,
			Directory: "exports",
		},
		Defaults: DefaultsConfig{
			LegalBasis: "Regulation of the Minister of Infrastructure on the general conditions of rail traffic operation and management",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .tca/config.json under dataDir.
// A missing config file yields the defaults.
func LoadConfig(dataDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", configVersion)
	v.SetDefault("dataDir", ".")
	v.SetDefault("autoSave.enabled", true)
	v.SetDefault("autoSave.delayMs", 2000)
	v.SetDefault("export.compress", false)
	v.SetDefault("export.directory", "exports")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(dataDir, ".tca"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Defaults.LegalBasis == "" {
		cfg.Defaults.LegalBasis = DefaultConfig().Defaults.LegalBasis
	}

	return &cfg, nil
}

// Save writes the configuration to .tca/config.json under dataDir
func (c *Config) Save(dataDir string) error {
	dir := filepath.Join(dataDir, ".tca")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != configVersion {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.AutoSave.DelayMs < 0 {
		return &ConfigError{Field: "autoSave.delayMs", Message: "delay cannot be negative"}
	}
	switch c.Logging.Format {
	case "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be 'human' or 'json'"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
