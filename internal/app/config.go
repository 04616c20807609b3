package app

import (
	"github.com/vk/countryplug/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// CountryCode is the explicit country argument. Empty means fall back
	// to the environment/file chain.
	CountryCode string
	// CatalogPath points at the country discovery manifest (file or
	// directory). The built-in catalog is used when the path does not exist.
	CatalogPath string
	// ConfigFilePath is the last-resort country config file.
	ConfigFilePath string
	// GreetName is the subject of the greeting demonstration.
	GreetName string

	LogFormat string
	LogLevel  string
}

// NewConfig applies defaults and validates the configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = "countries.hcl"
	}
	if cfg.ConfigFilePath == "" {
		cfg.ConfigFilePath = config.DefaultFilePath
	}
	if cfg.GreetName == "" {
		cfg.GreetName = "World"
	}
	return &cfg, nil
}
