package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Provider    string `toml:"provider"`
	Model       string `toml:"model"`
	Concurrency int    `toml:"concurrency"`
	BatchSize   int    `toml:"batch_size"`
	Strict      bool   `toml:"strict"`
	FFmpegPath  string `toml:"ffmpeg_path"`
}

func Default() *Config {
	return &Config{
		Provider:    "gemini",
		Concurrency: 3,
		BatchSize:   50,
	}
}

// DefaultPath is <user config dir>/srtkit/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "srtkit", "config.toml"), nil
}

// Load reads path over the defaults. An empty path means DefaultPath; a
// missing default file is not an error, a missing explicit one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if home, err := os.UserHomeDir(); err == nil {
		cfg.FFmpegPath = expandHome(cfg.FFmpegPath, home)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	return nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
