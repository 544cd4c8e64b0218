package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultEndpoint         = "https://api.sampleapis.com/beers/ale"
	DefaultDebounce         = 300 * time.Millisecond
	DefaultTimeout          = 15 * time.Second
	DefaultPlaceholderImage = "/api/placeholder/400/400"
	DefaultUserAgent        = "alescout/1.0"
	DefaultLogFile          = "alescout.log"
	DefaultLogLevel         = "info"
)

// Config represents the application configuration
type Config struct {
	Endpoint         string    `toml:"endpoint"`
	Debounce         Duration  `toml:"debounce"`
	Timeout          Duration  `toml:"timeout"`
	PlaceholderImage string    `toml:"placeholder_image"`
	UserAgent        string    `toml:"user_agent"`
	Log              LogConfig `toml:"log"`
}

// LogConfig controls the log file
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a Go duration string ("300ms")
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "alescout", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file Load reads
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path.
// Keys absent from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the values a user can get wrong
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint: missing host")
	}
	if c.Debounce.Duration < 0 {
		return fmt.Errorf("debounce must not be negative")
	}
	if c.Timeout.Duration <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Endpoint:         DefaultEndpoint,
		Debounce:         Duration{DefaultDebounce},
		Timeout:          Duration{DefaultTimeout},
		PlaceholderImage: DefaultPlaceholderImage,
		UserAgent:        DefaultUserAgent,
		Log: LogConfig{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}
