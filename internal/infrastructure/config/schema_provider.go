package config

import (
	"fmt"
	"strings"
)

// Section names for grouping config keys.
const (
	SectionLogging     = "Logging"
	SectionSession     = "Session"
	SectionWindow      = "Window"
	SectionWorkspace   = "Workspace"
	SectionKeybindings = "Keybindings"
)

// KeyInfo describes one configuration key for `kterm config keys`.
type KeyInfo struct {
	Key         string
	Type        string
	Default     string
	Description string
	Values      []string
	Range       string
	Section     string
}

// SchemaProvider lists every configuration key with its metadata.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []KeyInfo {
	defaults := DefaultConfig()

	keys := make([]KeyInfo, 0, 32)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getSessionKeys(defaults)...)
	keys = append(keys, p.getWindowKeys(defaults)...)
	keys = append(keys, p.getWorkspaceKeys(defaults)...)
	keys = append(keys, p.getKeybindingKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []KeyInfo {
	return []KeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Minimum log level (KTERM_LOG_LEVEL)",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format (KTERM_LOG_FORMAT)",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getSessionKeys(defaults *Config) []KeyInfo {
	return []KeyInfo{
		{
			Key:         "session.enabled",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Session.Enabled),
			Description: "Save the layout on exit and restore it on start",
			Section:     SectionSession,
		},
		{
			Key:         "session.path",
			Type:        "string",
			Default:     "$XDG_CONFIG_HOME/kterm/session.json",
			Description: "Session document location (KTERM_SESSION_FILE)",
			Section:     SectionSession,
		},
		{
			Key:         "session.autosave_interval_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Session.AutosaveIntervalMs),
			Description: "Delay between a layout change and the write; 0 saves on exit only",
			Range:       ">=0",
			Section:     SectionSession,
		},
	}
}

func (*SchemaProvider) getWindowKeys(defaults *Config) []KeyInfo {
	return []KeyInfo{
		{
			Key:         "window.default_width",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Window.DefaultWidth),
			Description: "Window width when no session provides one",
			Range:       ">=1",
			Section:     SectionWindow,
		},
		{
			Key:         "window.default_height",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Window.DefaultHeight),
			Description: "Window height when no session provides one",
			Range:       ">=1",
			Section:     SectionWindow,
		},
	}
}

func (*SchemaProvider) getWorkspaceKeys(defaults *Config) []KeyInfo {
	return []KeyInfo{
		{
			Key:         "workspace.default_split_kind",
			Type:        "string",
			Default:     defaults.Workspace.DefaultSplitKind,
			Description: "Pane kind created by a plain split",
			Values:      []string{"terminal", "explorer", "browser"},
			Section:     SectionWorkspace,
		},
		{
			Key:         "workspace.navigation_epsilon",
			Type:        "float",
			Default:     fmt.Sprintf("%g", defaults.Workspace.NavigationEpsilon),
			Description: "Minimum center offset for a pane to lie in a direction",
			Range:       ">=0",
			Section:     SectionWorkspace,
		},
		{
			Key:         "workspace.browser_home",
			Type:        "string",
			Default:     defaults.Workspace.BrowserHome,
			Description: "URL opened by new browser panes",
			Section:     SectionWorkspace,
		},
	}
}

func (*SchemaProvider) getKeybindingKeys(defaults *Config) []KeyInfo {
	actions := defaults.Keybindings.Actions()
	keys := make([]KeyInfo, 0, len(actions))
	for _, action := range actions {
		keys = append(keys, KeyInfo{
			Key:         "keybindings." + action.Name,
			Type:        "[]string",
			Default:     strings.Join(action.Keys, ", "),
			Description: "Keys for " + strings.ReplaceAll(action.Name, "_", " "),
			Section:     SectionKeybindings,
		})
	}
	return keys
}
