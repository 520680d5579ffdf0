package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"searchbox/internal/domain"
	"searchbox/internal/eventbus"
	"searchbox/internal/matcher"
)

// What the search service does with its results when a regex stops compiling
const (
	OnInvalidClear = "clear"
	OnInvalidKeep  = "keep"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Candidates []string       `toml:"candidates"`
	Search     SearchSettings `toml:"search"`
	UISettings UISettings     `toml:"ui"`
}

// SearchSettings controls how queries are matched
type SearchSettings struct {
	Regex      bool   `toml:"regex"`       // initial state of the regex toggle
	Engine     string `toml:"engine"`      // re2 | pcre
	IgnoreCase bool   `toml:"ignore_case"`
	EmptyQuery string `toml:"empty_query"` // all | none
	OnInvalid  string `toml:"on_invalid"`  // clear | keep
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCount  bool `toml:"show_count"`
	SaveOnExit bool `toml:"save_on_exit"`
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

// DefaultPath returns $XDG_CONFIG_HOME/searchbox/config.toml or the closest equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "searchbox", "config.toml")
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	return NewConfigServiceForPath(DefaultPath())
}

// NewConfigServiceForPath creates a config service backed by a specific file
func NewConfigServiceForPath(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

// Path returns the file this service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:       cs.filePath,
			Candidates: len(cfg.Candidates),
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Parse decodes TOML on top of the defaults, so missing keys keep their default value
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Candidates = nil

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// An explicit empty list is kept, an absent one means the defaults
	if cfg.Candidates == nil {
		cfg.Candidates = domain.DefaultCandidates()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects unknown enum values
func (c *Config) Validate() error {
	switch c.Search.Engine {
	case "", matcher.EngineRE2, matcher.EnginePCRE:
	default:
		return fmt.Errorf("invalid search.engine %q: want %q or %q", c.Search.Engine, matcher.EngineRE2, matcher.EnginePCRE)
	}

	switch matcher.EmptyQueryPolicy(c.Search.EmptyQuery) {
	case "", matcher.EmptyMatchesAll, matcher.EmptyMatchesNone:
	default:
		return fmt.Errorf("invalid search.empty_query %q: want %q or %q", c.Search.EmptyQuery, matcher.EmptyMatchesAll, matcher.EmptyMatchesNone)
	}

	switch c.Search.OnInvalid {
	case "", OnInvalidClear, OnInvalidKeep:
	default:
		return fmt.Errorf("invalid search.on_invalid %q: want %q or %q", c.Search.OnInvalid, OnInvalidClear, OnInvalidKeep)
	}

	return nil
}

// MatcherOptions converts the search settings into matcher options
func (c *Config) MatcherOptions() matcher.Options {
	return matcher.Options{
		Engine:     c.Search.Engine,
		IgnoreCase: c.Search.IgnoreCase,
		EmptyQuery: matcher.EmptyQueryPolicy(c.Search.EmptyQuery),
	}
}

// KeepResultsOnInvalid reports whether stale results stay visible while the query is invalid
func (c *Config) KeepResultsOnInvalid() bool {
	return c.Search.OnInvalid == OnInvalidKeep
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		Candidates: domain.DefaultCandidates(),
		Search: SearchSettings{
			Regex:      false,
			Engine:     matcher.EngineRE2,
			IgnoreCase: false,
			EmptyQuery: string(matcher.EmptyMatchesAll),
			OnInvalid:  OnInvalidClear,
		},
		UISettings: UISettings{
			ShowCount:  true,
			SaveOnExit: false,
		},
	}
}
