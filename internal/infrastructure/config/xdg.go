package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName         = "kterm"
	configFileName  = "config.toml"
	sessionFileName = "session.json"
)

// XDGDirs holds the directories kterm reads and writes.
type XDGDirs struct {
	ConfigHome string
	StateHome  string
}

// GetXDGDirs resolves the kterm directories. Setting ENV=dev appends a
// ".dev" suffix so development builds never touch the real session.
func GetXDGDirs() (*XDGDirs, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	name := appName
	if os.Getenv("ENV") == "dev" {
		name += ".dev"
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(configHome, name),
		StateHome:  filepath.Join(stateHome, name),
	}, nil
}

// GetConfigDir returns the kterm configuration directory.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to config.toml.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetSessionFile returns the default session document path.
func GetSessionFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, sessionFileName), nil
}

// GetLogDir returns the directory for log files.
func GetLogDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.StateHome, "logs"), nil
}

// EnsureDirectories creates the kterm directories if missing.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
