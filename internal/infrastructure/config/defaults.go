package config

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	defaultAutosaveIntervalMs = 5000

	defaultWindowWidth  = 800
	defaultWindowHeight = 600

	defaultSplitKind         = "terminal"
	defaultNavigationEpsilon = 1.0
	defaultBrowserHome       = "https://www.google.com"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Session: SessionConfig{
			Enabled:            true,
			AutosaveIntervalMs: defaultAutosaveIntervalMs,
		},
		Window: WindowConfig{
			DefaultWidth:  defaultWindowWidth,
			DefaultHeight: defaultWindowHeight,
		},
		Workspace: WorkspaceConfig{
			DefaultSplitKind:  defaultSplitKind,
			NavigationEpsilon: defaultNavigationEpsilon,
			BrowserHome:       defaultBrowserHome,
		},
		Keybindings: defaultKeybindings(),
	}
}

func defaultKeybindings() KeybindingsConfig {
	return KeybindingsConfig{
		SplitHorizontal: []string{"ctrl+s", "|"},
		SplitVertical:   []string{"ctrl+v", "-"},
		SplitExplorer:   []string{"e"},
		SplitBrowser:    []string{"b"},
		ClosePane:       []string{"ctrl+w", "x"},
		FocusLeft:       []string{"left", "h"},
		FocusRight:      []string{"right", "l"},
		FocusUp:         []string{"up", "k"},
		FocusDown:       []string{"down", "j"},
		SwapNext:        []string{"s"},
		Equalize:        []string{"="},
		NewTab:          []string{"ctrl+t", "t"},
		CloseTab:        []string{"T"},
		NextTab:         []string{"tab", "]"},
		PreviousTab:     []string{"shift+tab", "["},
		Quit:            []string{"ctrl+c", "q"},
	}
}
