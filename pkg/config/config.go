// Package config provides configuration for the greeting servers, read from
// an optional YAML file and the environment. Precedence: defaults, then file,
// then environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the API and web servers.
type Config struct {
	// Greeting is the message served by GET /api/hello/.
	Greeting string

	// API server configuration
	APIHost string
	APIPort int

	// Web server configuration
	WebHost string
	WebPort int

	// APIURL is the base URL the web server uses to reach the API.
	APIURL string

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// fileConfig mirrors Config for YAML decoding. Pointer fields distinguish
// values the file sets from values it omits.
type fileConfig struct {
	Greeting *string `yaml:"greeting"`
	API      struct {
		Host *string `yaml:"host"`
		Port *int    `yaml:"port"`
	} `yaml:"api"`
	Web struct {
		Host   *string `yaml:"host"`
		Port   *int    `yaml:"port"`
		APIURL *string `yaml:"api_url"`
	} `yaml:"web"`
	ShutdownTimeout *string `yaml:"shutdown_timeout"`
	Log             struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"log"`
}

// Load reads configuration from the file named by CONFIG_FILE (if set) and
// the environment, validating the result.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration from the environment only, without
// validation. Useful for testing.
func LoadWithDefaults() *Config {
	cfg := defaults()
	cfg.applyEnv()
	return cfg
}

func defaults() *Config {
	return &Config{
		Greeting:        "Hello from Django backend!",
		APIHost:         "0.0.0.0",
		APIPort:         8000,
		WebHost:         "0.0.0.0",
		WebPort:         3000,
		APIURL:          "http://127.0.0.1:8000",
		ShutdownTimeout: 30 * time.Second,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if fc.Greeting != nil {
		c.Greeting = *fc.Greeting
	}
	if fc.API.Host != nil {
		c.APIHost = *fc.API.Host
	}
	if fc.API.Port != nil {
		c.APIPort = *fc.API.Port
	}
	if fc.Web.Host != nil {
		c.WebHost = *fc.Web.Host
	}
	if fc.Web.Port != nil {
		c.WebPort = *fc.Web.Port
	}
	if fc.Web.APIURL != nil {
		c.APIURL = *fc.Web.APIURL
	}
	if fc.ShutdownTimeout != nil {
		d, err := time.ParseDuration(*fc.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("parsing shutdown_timeout: %w", err)
		}
		c.ShutdownTimeout = d
	}
	if fc.Log.Level != nil {
		c.LogLevel = *fc.Log.Level
	}
	if fc.Log.Format != nil {
		c.LogFormat = *fc.Log.Format
	}

	return nil
}

func (c *Config) applyEnv() {
	c.Greeting = getEnv("GREETING_MESSAGE", c.Greeting)
	c.APIHost = getEnv("API_HOST", c.APIHost)
	c.APIPort = getIntEnv("API_PORT", c.APIPort)
	c.WebHost = getEnv("WEB_HOST", c.WebHost)
	c.WebPort = getIntEnv("WEB_PORT", c.WebPort)
	c.APIURL = getEnv("INTERNAL_API_URL", getEnv("API_URL", c.APIURL))
	c.ShutdownTimeout = getDurationEnv("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
}

// Validate checks that required configuration values are set and sane.
func (c *Config) Validate() error {
	if c.Greeting == "" {
		return fmt.Errorf("greeting message must not be empty")
	}
	if c.APIPort < 1 || c.APIPort > 65535 {
		return fmt.Errorf("API_PORT must be between 1 and 65535, got %d", c.APIPort)
	}
	if c.WebPort < 1 || c.WebPort > 65535 {
		return fmt.Errorf("WEB_PORT must be between 1 and 65535, got %d", c.WebPort)
	}
	if c.APIURL == "" {
		return fmt.Errorf("API_URL is required")
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return nil
}

// SlogLevel returns the configured log level. Values that do not parse
// fall back to info; Validate rejects them before this is reached.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// APIAddr returns the API server listen address.
func (c *Config) APIAddr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

// WebAddr returns the web server listen address.
func (c *Config) WebAddr() string {
	return fmt.Sprintf("%s:%d", c.WebHost, c.WebPort)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
