// Package config loads interpreter settings from a YAML file.
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-lox"
)

// DefaultPrompt is shown by the interactive prompt when none is configured.
const DefaultPrompt = "> "

// Config holds the settings a user can put in a config file. Zero fields
// fall back to the library defaults.
type Config struct {
	MaxDepth int    `yaml:"max_depth"`
	Indent   *int   `yaml:"indent"`
	LogLevel string `yaml:"log_level"`
	Prompt   string `yaml:"prompt"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Prompt: DefaultPrompt}
}

// Load reads the config file at path. An empty path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	return cfg, nil
}

// Decode reads a config document from r. Unknown keys are rejected and an
// empty document yields Default.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if c.Indent != nil && *c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", *c.Indent)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level. An empty level means warnings
// and above.
func (c *Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Options converts the configuration into lox options. The logger is
// attached as is; it may be nil to keep the library default.
func (c *Config) Options(logger *slog.Logger) []lox.Option {
	var opts []lox.Option
	if c.MaxDepth > 0 {
		opts = append(opts, lox.MaxDepth(c.MaxDepth))
	}
	if c.Indent != nil {
		opts = append(opts, lox.Indent(*c.Indent))
	}
	if logger != nil {
		opts = append(opts, lox.WithLogger(logger))
	}
	return opts
}
