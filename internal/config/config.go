package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"artshelf/internal/eventbus"
)

// Default catalog endpoint and page size used when no config file exists.
const (
	DefaultBaseURL  = "https://api.artic.edu/api/v1/artworks"
	DefaultPageSize = 12
)

// DefaultFields is the field list requested from the catalog endpoint
var DefaultFields = []string{
	"id", "title", "place_of_origin", "artist_display", "date_start", "date_end",
}

// Config represents the application configuration
type Config struct {
	Version  int        `toml:"version"`
	BaseURL  string     `toml:"base_url"`
	PageSize int        `toml:"page_size"`
	Fields   []string   `toml:"fields"`
	Retries  int        `toml:"retries"` // HTTP retry attempts per fetch, 0 disables
	LogFile  string     `toml:"log_file"`
	UI       UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowDateRange bool `toml:"show_date_range"`
	ShowOrigin    bool `toml:"show_origin"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "artshelf")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		BaseURL:  DefaultBaseURL,
		PageSize: DefaultPageSize,
		Fields:   append([]string(nil), DefaultFields...),
		Retries:  0,
		LogFile:  "artshelf.log",
		UI: UISettings{
			ShowDateRange: true,
			ShowOrigin:    true,
		},
	}
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads the configuration from a specific file
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Guard against values that would break pagination math
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = append([]string(nil), DefaultFields...)
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}

	cs.publishLoaded(cfg)
	return cfg, nil
}

// SaveToPath saves the configuration to a specific file
func (cs *configService) SaveToPath(config *Config, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			BaseURL:  cfg.BaseURL,
			PageSize: cfg.PageSize,
		})
	}
}
