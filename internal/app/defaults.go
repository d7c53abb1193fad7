package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - ECOTECH_CONFIG_PATH: config file location (default: ~/.config/ecotech.toml)
//   - ECOTECH_HOME: base directory for ecotech data (default: ~/.local/share/ecotech)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// getConfigPath returns the config file path, checking ECOTECH_CONFIG_PATH
// first, then falling back to the default ~/.config/ecotech.toml.
func getConfigPath() (string, error) {
	if path := os.Getenv("ECOTECH_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "ecotech.toml"), nil
}

// getBaseDir returns the base directory for ecotech data, checking
// ECOTECH_HOME first, then falling back to the XDG default.
func getBaseDir() (string, error) {
	if path := os.Getenv("ECOTECH_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "ecotech"), nil
}
