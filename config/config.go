// Package config loads presentation settings; gameplay constants are not configurable
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/pewpewpew/constant"
)

// Display backends
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

var (
	ErrUnknownBackend   = errors.New("unknown backend")
	ErrUnknownColorMode = errors.New("unknown color mode")
	ErrInvalidSize      = errors.New("size must be positive")
	ErrUnknownFormat    = errors.New("unsupported config format")
)

// Config holds process-level settings
type Config struct {
	Backend   string `toml:"backend" yaml:"backend"`
	ColorMode string `toml:"color_mode" yaml:"color_mode"`

	CellWidth  int `toml:"cell_width" yaml:"cell_width"`
	CellHeight int `toml:"cell_height" yaml:"cell_height"`

	WindowWidth  int    `toml:"window_width" yaml:"window_width"`
	WindowHeight int    `toml:"window_height" yaml:"window_height"`
	Title        string `toml:"title" yaml:"title"`

	// Seed fixes the random source; 0 seeds from the clock
	Seed uint64 `toml:"seed" yaml:"seed"`

	Debug  bool   `toml:"debug" yaml:"debug"`
	LogDir string `toml:"log_dir" yaml:"log_dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Backend:      BackendTerminal,
		ColorMode:    "auto",
		CellWidth:    constant.DefaultCellWidth,
		CellHeight:   constant.DefaultCellHeight,
		WindowWidth:  constant.DefaultWindowWidth,
		WindowHeight: constant.DefaultWindowHeight,
		Title:        constant.DefaultWindowTitle,
		LogDir:       "logs",
	}
}

// Load reads path over the defaults; the decoder is picked by file extension
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := Decode(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode unmarshals data in the format named by ext (".toml", ".yaml", ".yml")
// Fields absent from data keep their current value
func Decode(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Validate checks enumerations and sizes
func (c Config) Validate() error {
	switch c.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}

	switch strings.ToLower(c.ColorMode) {
	case "", "auto", "256", "truecolor", "true", "24bit":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownColorMode, c.ColorMode)
	}

	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("cell %dx%d: %w", c.CellWidth, c.CellHeight, ErrInvalidSize)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.WindowWidth, c.WindowHeight, ErrInvalidSize)
	}
	return nil
}
