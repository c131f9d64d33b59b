package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Output   OutputConfig   `mapstructure:"output"`
	Filters  FilterConfig   `mapstructure:"filters"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// HTTPConfig holds the transport settings
type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// DefaultsConfig holds the request parameters used when a flag is not given
type DefaultsConfig struct {
	Country  string `mapstructure:"country"`
	Lang     string `mapstructure:"lang"`
	Limit    int    `mapstructure:"limit"`
	Explicit bool   `mapstructure:"explicit"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// FilterConfig maps a name to a saved filter expression
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
