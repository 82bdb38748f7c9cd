// Package config loads server settings from the environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the server.
type Config struct {
	Host     string
	Port     int
	GinMode  string
	LogLevel string
}

// Load reads configuration from TODOWEB_* environment variables,
// falling back to defaults suitable for local use.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TODOWEB")
	v.AutomaticEnv()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 7000)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")

	cfg := &Config{
		Host:     v.GetString("host"),
		Port:     v.GetInt("port"),
		GinMode:  v.GetString("gin_mode"),
		LogLevel: v.GetString("log_level"),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

// Addr returns the host:port pair the server should bind to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
