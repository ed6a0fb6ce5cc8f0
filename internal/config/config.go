// Package config loads callgrid-mcp configuration: an optional YAML file
// overlaid with environment variables for credentials and the base URL.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by ApplyEnv. The two credential
// variables are the usual way to configure the server; the file exists for
// everything else.
const (
	EnvAccessKey    = "CALLGRID_ACCESS_KEY"
	EnvAccessSecret = "CALLGRID_ACCESS_SECRET"
	EnvBaseURL      = "CALLGRID_BASE_URL"
)

// Config holds everything the server needs to run. AccessKey and
// AccessSecret are required; the rest has defaults.
type Config struct {
	AccessKey      string `yaml:"accessKey"`
	AccessSecret   string `yaml:"accessSecret"`
	BaseURL        string `yaml:"baseUrl"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
	LogLevel       string `yaml:"logLevel"`
}

// DefaultConfig returns the configuration used when no file exists.
// BaseURL is left empty so the client falls back to its production default.
func DefaultConfig() Config {
	return Config{
		TimeoutSeconds: 30,
		LogLevel:       "info",
	}
}

// ConfigPath returns the default configuration file path:
// ~/.callgrid-mcp/config.yaml.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".callgrid-mcp/config.yaml"
	}
	return filepath.Join(home, ".callgrid-mcp", "config.yaml")
}

// Load reads and parses the config file at path. If path is empty,
// ConfigPath() is used. A missing file yields DefaultConfig(); a file that
// exists but does not parse is an error, because silently dropping
// credentials from a present file would be worse than failing.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyEnv overlays the recognized environment variables onto c. Set
// variables win over file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAccessKey); v != "" {
		c.AccessKey = v
	}
	if v := os.Getenv(EnvAccessSecret); v != "" {
		c.AccessSecret = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
}

// Validate reports whether c can authenticate at all. Serving without
// credentials is pointless, so callers treat this as fatal.
func (c *Config) Validate() error {
	if c.AccessKey == "" || c.AccessSecret == "" {
		return errors.New("missing Callgrid credentials: set " + EnvAccessKey + " and " + EnvAccessSecret)
	}
	return nil
}
