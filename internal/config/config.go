package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"pupfinder/internal/eventbus"
)

// DefaultBaseURL is the public dog adoption API
const DefaultBaseURL = "https://frontend-take-home-service.fetch.com"

// EnvBaseURL overrides the configured API base URL when set
const EnvBaseURL = "PUPFINDER_BASE_URL"

// Config represents the application configuration
type Config struct {
	Version    int          `toml:"version"`
	BaseURL    string       `toml:"base_url"`
	HTTP       HTTPSettings `toml:"http"`
	UISettings UISettings   `toml:"ui"`
	Login      LoginPrefill `toml:"login"`
}

// HTTPSettings tunes the API client
type HTTPSettings struct {
	Timeout           Duration `toml:"timeout"`
	RequestsPerSecond float64  `toml:"requests_per_second"` // 0 disables rate limiting
	Burst             int      `toml:"burst"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowImages bool `toml:"show_images"` // show image URLs on dog cards
}

// LoginPrefill remembers the last name and email used to log in
type LoginPrefill struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// Duration is a time.Duration stored as a string like "30s"
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service using the default location
func NewConfigService() ConfigService {
	return NewConfigServiceAt(DefaultPath())
}

// NewConfigServiceAt creates a config service reading and writing path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// DefaultPath returns ~/.config/pupfinder/config.toml or a local fallback
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			return "pupfinder.toml"
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "pupfinder", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist. Environment overrides are applied last.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	ApplyEnv(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// The returned error wraps os.ErrNotExist when the file is missing.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

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

// LoadDotEnv loads variables from a .env file in the working directory, if any.
// Variables already set in the environment are not overwritten.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// ApplyEnv applies environment overrides to cfg
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		BaseURL: DefaultBaseURL,
		HTTP: HTTPSettings{
			Timeout:           Duration{30 * time.Second},
			RequestsPerSecond: 5,
			Burst:             2,
		},
		UISettings: UISettings{
			ShowImages: true,
		},
	}
}

// normalize fills zero values left by a partial file
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.HTTP.Timeout.Duration <= 0 {
		c.HTTP.Timeout = def.HTTP.Timeout
	}
	if c.HTTP.RequestsPerSecond < 0 {
		c.HTTP.RequestsPerSecond = def.HTTP.RequestsPerSecond
	}
	if c.HTTP.Burst <= 0 {
		c.HTTP.Burst = def.HTTP.Burst
	}
}
