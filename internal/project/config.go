// Package project handles persistence of the application configuration.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/naggie/turbojigsaw/internal/model"
)

// DefaultConfigDir returns the default directory for configuration.
// On all platforms this is ~/.turbojigsaw/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".turbojigsaw")
}

// DefaultConfigPath returns the default path for the config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveConfig persists a Config to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveConfig(path string, cfg model.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadConfig reads a Config from the given path.
// If the file does not exist, it returns DefaultConfig with no error.
func LoadConfig(path string) (model.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultConfig(), nil
		}
		return model.Config{}, err
	}
	var cfg model.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}
