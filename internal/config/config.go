// Package config handles loading the flowdeck.toml configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the user configuration, loaded from
// ~/.config/flowdeck/config.toml. Every field is optional.
type Config struct {
	Account  Account  `toml:"account"`
	Defaults Defaults `toml:"defaults"`
	Storage  Storage  `toml:"storage"`
}

// Account is the identity shown in platform preview mocks.
type Account struct {
	Name   string `toml:"name"`
	Handle string `toml:"handle"`
}

// Defaults seed new posts and the calendar.
type Defaults struct {
	Platform string `toml:"platform"`
	View     string `toml:"view"`
}

// Storage points at the data directory holding the post blob and the
// SQLite database.
type Storage struct {
	Dir string `toml:"dir"`
}

// Load reads the global config file. A missing file yields an empty
// config; a malformed one is an error.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "flowdeck", "config.toml"), nil
}

// DataDir resolves the data directory, defaulting to ~/.flowdeck.
func (c *Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".flowdeck"), nil
}

// PostsPath is the location of the post blob.
func (c *Config) PostsPath() (string, error) {
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "posts.json"), nil
}

// DatabasePath is the location of the SQLite database.
func (c *Config) DatabasePath() (string, error) {
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "flowdeck.db"), nil
}

// DefaultPlatform falls back to twitter when unset.
func (c *Config) DefaultPlatform() string {
	if c.Defaults.Platform != "" {
		return c.Defaults.Platform
	}
	return "twitter"
}

// DefaultView falls back to week when unset.
func (c *Config) DefaultView() string {
	if c.Defaults.View != "" {
		return c.Defaults.View
	}
	return "week"
}
