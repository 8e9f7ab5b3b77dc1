// Package config loads CLI settings from defaults, an optional config file and
// PATIENTVIEW_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// PATIENTVIEW_INDENT.
const EnvPrefix = "PATIENTVIEW"

// Config holds the rendering and runtime settings shared by all commands.
type Config struct {
	Indent     string `mapstructure:"indent"`
	Compact    bool   `mapstructure:"compact"`
	TableAttrs string `mapstructure:"table_attrs"`
	BlockSize  int    `mapstructure:"block_size"`
	LogLevel   string `mapstructure:"log_level"`
}

// Defaults registers default values on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("indent", "    ")
	v.SetDefault("compact", false)
	v.SetDefault("table_attrs", "")
	v.SetDefault("block_size", 1024)
	v.SetDefault("log_level", "info")
}

// Load resolves the configuration held by v. When configFile is set it must
// exist and parse.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	Defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no command can run with.
func (c *Config) Validate() error {
	if c.BlockSize <= 0 {
		return fmt.Errorf("config: block_size must be positive, got %d", c.BlockSize)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	return nil
}
