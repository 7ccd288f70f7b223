// Package config handles runtime settings using Viper. Settings come from
// environment variables with the RIVERWM prefix; there is no config file.
package config

import (
	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	// NTags is the default tag-range width when no positional n_tags
	// argument is given. Must stay within [1, 32].
	NTags int `mapstructure:"n_tags"`

	// LogLevel overrides the RIVERWM_LOG_LEVEL environment variable.
	LogLevel string `mapstructure:"log_level"`

	// WaylandDisplay overrides the compositor socket passed to the
	// transport. Empty means the transport's own WAYLAND_DISPLAY lookup.
	WaylandDisplay string `mapstructure:"wayland_display"`
}

// DefaultConfig provides sensible defaults.
var DefaultConfig = Config{
	NTags:          32,
	LogLevel:       "",
	WaylandDisplay: "",
}

// Load reads the configuration from the environment, falling back to
// defaults for unset keys.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RIVERWM")
	v.AutomaticEnv()

	v.SetDefault("n_tags", DefaultConfig.NTags)
	v.SetDefault("log_level", DefaultConfig.LogLevel)
	v.SetDefault("wayland_display", DefaultConfig.WaylandDisplay)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
