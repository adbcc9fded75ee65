package config

import (
	"os"
	"path/filepath"
)

// Dir returns the hw state directory (~/.hw), honoring the HW_HOME
// override used by tests.
func Dir() string {
	if dir := os.Getenv("HW_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hw"
	}
	return filepath.Join(home, ".hw")
}

// File returns the config file path.
func File() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LogDir returns the log directory, creating it if needed.
func LogDir() (string, error) {
	dir := filepath.Join(Dir(), "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// CacheFile returns the search-cache database path, creating the parent
// directory if needed.
func CacheFile() (string, error) {
	dir := filepath.Join(Dir(), "cache")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "search.db"), nil
}
