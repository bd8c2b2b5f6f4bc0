package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"coco/internal/source"
	"coco/internal/ui/services/filter"
)

// DefaultPrompt is shown before the query
const DefaultPrompt = "QUERY> "

// Config represents the application configuration
type Config struct {
	Prompt      string        `toml:"prompt"`
	Query       string        `toml:"query"`
	MaxBuffer   int           `toml:"max_buffer"`
	RegexEngine string        `toml:"regex_engine"`
	Style       StyleSettings `toml:"style"`
}

// StyleSettings holds the terminal colors used by the renderer. Values are
// lipgloss colors: ANSI numbers ("4") or hex ("#0066CC").
type StyleSettings struct {
	PromptFg string `toml:"prompt_fg"`
	CursorFg string `toml:"cursor_fg"`
	CursorBg string `toml:"cursor_bg"`
	ErrorFg  string `toml:"error_fg"`
}

// ConfigService handles configuration loading
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the per-user config file
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "coco", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service reading an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service reads
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file
// does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values; unknown keys are an error.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("failed to parse config %s: %s", path, strict.String())
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.MaxBuffer <= 0 {
		return fmt.Errorf("max_buffer must be positive, got %d", c.MaxBuffer)
	}
	if _, err := filter.CompilerFor(filter.Engine(c.RegexEngine)); err != nil {
		return err
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Prompt:      DefaultPrompt,
		MaxBuffer:   source.DefaultMaxLines,
		RegexEngine: string(filter.EngineRE2),
		Style: StyleSettings{
			PromptFg: "99",
			CursorFg: "15",
			CursorBg: "4",
			ErrorFg:  "203",
		},
	}
}
