// Package config loads the settings shared by the collage front ends.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"collage/pkg/utils"

	"gopkg.in/yaml.v3"
)

const (
	// EnvVar names a config file used when no explicit path is given.
	EnvVar = "COLLAGE_CONFIG"
	// DefaultPath is tried last and may be absent.
	DefaultPath = "~/.collage.yml"
)

var ErrNotFound = errors.New("config file not found")

// Config models .collage.yml.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
	Verbose     bool   `yaml:"verbose"`
	ShowTokens  bool   `yaml:"show_tokens"`
	ShowTree    bool   `yaml:"show_tree"`

	// Path is where the config was loaded from; empty for defaults.
	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Prompt:      "> ",
		HistoryFile: "~/.collage_history",
		Color:       true,
	}
}

// Load decodes path over the defaults, so keys left out of the file keep
// their default values. Unknown keys are an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %s: %w", abs, ErrNotFound)
		}
		return nil, fmt.Errorf("config: open %s: %w", abs, err)
	}
	defer file.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	// An empty file decodes to io.EOF and leaves the defaults in place.
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	cfg.Path = abs
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", abs, err)
	}
	return cfg, nil
}

// Resolve picks the config for a front end: explicit if set, otherwise
// $COLLAGE_CONFIG, otherwise DefaultPath. Only the implicit default may be
// missing, in which case Default is returned.
func Resolve(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if env := os.Getenv(EnvVar); env != "" {
		return Load(env)
	}
	cfg, err := Load(DefaultPath)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if c.Prompt == "" {
		return errors.New("prompt must not be empty")
	}
	return nil
}

// HistoryPath returns the expanded history file, or "" when history is
// disabled.
func (c *Config) HistoryPath() string {
	if c.HistoryFile == "" {
		return ""
	}
	p, err := utils.ExpandHome(c.HistoryFile)
	if err != nil {
		return ""
	}
	return p
}

// Write serialises c to path.
func (c *Config) Write(path string) error {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return fmt.Errorf("config: resolve %s: %w", path, err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: marshal %s: %w", expanded, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("config: encoder close: %w", err)
	}
	if err := os.WriteFile(expanded, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", expanded, err)
	}
	return nil
}
