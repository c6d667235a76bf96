package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const fileName = "itermlink.yaml"

// Config holds the bridge settings. Every field is optional; a missing config
// file just means defaults.
type Config struct {
	// Shell runs the generated osascript command lines. Defaults to /bin/sh.
	Shell string     `yaml:"shell"`
	Log   LogConfig  `yaml:"log"`
	Read  ReadConfig `yaml:"read"`
}

// LogConfig controls logrus setup. Logs always go to stderr; stdout carries
// the JSON-RPC stream.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ReadConfig tunes output reading.
type ReadConfig struct {
	// DefaultLines trims read results to the trailing N lines when the caller
	// does not ask for a count. Zero means the full buffer.
	DefaultLines int `yaml:"default_lines"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Shell: "/bin/sh",
		Log:   LogConfig{Level: "info"},
	}
}

// Load reads the config file at path, or searches for one when path is empty.
// Not finding any file is fine and yields defaults; an explicit path that
// cannot be read is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfigFile()
		if err != nil {
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if cfg.Shell == "" {
		cfg.Shell = "/bin/sh"
	}
	return cfg, nil
}

// findConfigFile searches the current directory, up to five parent
// directories, then ~/.itermlink/ for a config file.
func findConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err == nil {
		current := cwd
		for i := 0; i <= 5; i++ {
			candidate := filepath.Join(current, fileName)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
			parent := filepath.Dir(current)
			if parent == current {
				break
			}
			current = parent
		}
	}

	home, err := homedir.Dir()
	if err == nil {
		candidate := filepath.Join(home, ".itermlink", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%s not found in current directory, parent directories, or ~/.itermlink/config.yaml", fileName)
}
