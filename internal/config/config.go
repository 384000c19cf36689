// Package config loads pipeloop settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop/pipe"
)

// ErrInvalidConfig indicates a setting failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds CLI settings.
type Config struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Format selects how reports are printed.
	Format string `yaml:"format"`
	// Symbols overrides the input alphabet: each key is a single character,
	// each value a connector name (vertical, horizontal, north-east,
	// north-west, south-west, south-east, ground, start). When empty the
	// default | - L J 7 F . S alphabet is used.
	Symbols map[string]string `yaml:"symbols"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Format:   FormatText,
	}
}

// Load reads path and overlays it on Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks format and alphabet settings.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalidConfig, c.Format, FormatText, FormatYAML)
	}
	if _, err := c.Alphabet(); err != nil {
		return err
	}
	return nil
}

// Alphabet builds the connector alphabet described by Symbols.
func (c Config) Alphabet() (pipe.Alphabet, error) {
	if len(c.Symbols) == 0 {
		return pipe.DefaultAlphabet(), nil
	}
	a := make(pipe.Alphabet, len(c.Symbols))
	starts := 0
	for sym, name := range c.Symbols {
		if utf8.RuneCountInString(sym) != 1 {
			return nil, fmt.Errorf("%w: symbol %q must be a single character", ErrInvalidConfig, sym)
		}
		conn, err := pipe.ByName(name)
		if err != nil {
			return nil, fmt.Errorf("%w: symbol %q: %w", ErrInvalidConfig, sym, err)
		}
		r, _ := utf8.DecodeRuneInString(sym)
		a[r] = conn
		if conn.IsStart() {
			starts++
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: alphabet needs exactly one start symbol, has %d", ErrInvalidConfig, starts)
	}
	return a, nil
}
