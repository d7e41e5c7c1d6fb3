package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/koder-native/kterm/internal/domain/entity"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateWorkspace(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateSession(config *Config) []string {
	if config.Session.AutosaveIntervalMs < 0 {
		return []string{"session.autosave_interval_ms must be non-negative"}
	}
	return nil
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.DefaultWidth < 1 {
		validationErrors = append(validationErrors, "window.default_width must be positive")
	}
	if config.Window.DefaultHeight < 1 {
		validationErrors = append(validationErrors, "window.default_height must be positive")
	}
	return validationErrors
}

func validateWorkspace(config *Config) []string {
	var validationErrors []string
	if _, ok := entity.ParsePaneKind(config.Workspace.DefaultSplitKind); !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("workspace.default_split_kind must be terminal, explorer or browser (got %q)", config.Workspace.DefaultSplitKind))
	}
	if config.Workspace.NavigationEpsilon < 0 {
		validationErrors = append(validationErrors, "workspace.navigation_epsilon must be non-negative")
	}
	if home := config.Workspace.BrowserHome; home != "" {
		if u, err := url.Parse(home); err != nil || u.Scheme == "" {
			validationErrors = append(validationErrors,
				fmt.Sprintf("workspace.browser_home must be an absolute URL (got %q)", home))
		}
	}
	return validationErrors
}

// validateKeybindings rejects empty keys and keys bound to two actions.
func validateKeybindings(config *Config) []string {
	var validationErrors []string
	owner := make(map[string]string)
	for _, action := range config.Keybindings.Actions() {
		for _, key := range action.Keys {
			key = strings.TrimSpace(key)
			if key == "" {
				validationErrors = append(validationErrors,
					fmt.Sprintf("keybindings.%s contains an empty key", action.Name))
				continue
			}
			if prev, ok := owner[key]; ok && prev != action.Name {
				validationErrors = append(validationErrors,
					fmt.Sprintf("keybindings: %q is bound to both %s and %s", key, prev, action.Name))
				continue
			}
			owner[key] = action.Name
		}
	}
	return validationErrors
}
