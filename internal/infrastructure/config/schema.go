package config

// Config represents the complete configuration for kterm.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Session controls saving and restoring the window layout.
	Session SessionConfig `mapstructure:"session" toml:"session" json:"session"`
	// Window holds the size used when no session provides one.
	Window WindowConfig `mapstructure:"window" toml:"window" json:"window"`
	// Workspace tunes pane creation and navigation.
	Workspace WorkspaceConfig `mapstructure:"workspace" toml:"workspace" json:"workspace"`
	// Keybindings maps layout actions to keys.
	Keybindings KeybindingsConfig `mapstructure:"keybindings" toml:"keybindings" json:"keybindings"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// SessionConfig controls session persistence.
type SessionConfig struct {
	// Enabled turns saving and restoring on.
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled" jsonschema:"default=true"`
	// Path of the session document. Empty uses $XDG_CONFIG_HOME/kterm/session.json.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
	// AutosaveIntervalMs is the debounce delay between a layout change and
	// the write. Zero disables autosave; the session is still written on exit.
	AutosaveIntervalMs int `mapstructure:"autosave_interval_ms" toml:"autosave_interval_ms" json:"autosave_interval_ms" jsonschema:"minimum=0,default=5000"`
}

// WindowConfig holds default window geometry.
type WindowConfig struct {
	DefaultWidth  int `mapstructure:"default_width" toml:"default_width" json:"default_width" jsonschema:"minimum=1,default=800"`
	DefaultHeight int `mapstructure:"default_height" toml:"default_height" json:"default_height" jsonschema:"minimum=1,default=600"`
}

// WorkspaceConfig tunes pane behaviour.
type WorkspaceConfig struct {
	// DefaultSplitKind is the kind of pane a plain split creates.
	DefaultSplitKind string `mapstructure:"default_split_kind" toml:"default_split_kind" json:"default_split_kind" jsonschema:"enum=terminal,enum=explorer,enum=browser,default=terminal"`
	// NavigationEpsilon is the minimum center offset, in pixels, for a pane
	// to count as lying in a navigation direction.
	NavigationEpsilon float64 `mapstructure:"navigation_epsilon" toml:"navigation_epsilon" json:"navigation_epsilon" jsonschema:"minimum=0,default=1"`
	// BrowserHome is opened by new browser panes.
	BrowserHome string `mapstructure:"browser_home" toml:"browser_home" json:"browser_home"`
}

// KeybindingsConfig lists the keys bound to each layout action. Keys use
// the names understood by the terminal UI, e.g. "ctrl+h" or "alt+left".
type KeybindingsConfig struct {
	SplitHorizontal []string `mapstructure:"split_horizontal" toml:"split_horizontal" json:"split_horizontal"`
	SplitVertical   []string `mapstructure:"split_vertical" toml:"split_vertical" json:"split_vertical"`
	SplitExplorer   []string `mapstructure:"split_explorer" toml:"split_explorer" json:"split_explorer"`
	SplitBrowser    []string `mapstructure:"split_browser" toml:"split_browser" json:"split_browser"`
	ClosePane       []string `mapstructure:"close_pane" toml:"close_pane" json:"close_pane"`
	FocusLeft       []string `mapstructure:"focus_left" toml:"focus_left" json:"focus_left"`
	FocusRight      []string `mapstructure:"focus_right" toml:"focus_right" json:"focus_right"`
	FocusUp         []string `mapstructure:"focus_up" toml:"focus_up" json:"focus_up"`
	FocusDown       []string `mapstructure:"focus_down" toml:"focus_down" json:"focus_down"`
	SwapNext        []string `mapstructure:"swap_next" toml:"swap_next" json:"swap_next"`
	Equalize        []string `mapstructure:"equalize" toml:"equalize" json:"equalize"`
	NewTab          []string `mapstructure:"new_tab" toml:"new_tab" json:"new_tab"`
	CloseTab        []string `mapstructure:"close_tab" toml:"close_tab" json:"close_tab"`
	NextTab         []string `mapstructure:"next_tab" toml:"next_tab" json:"next_tab"`
	PreviousTab     []string `mapstructure:"previous_tab" toml:"previous_tab" json:"previous_tab"`
	Quit            []string `mapstructure:"quit" toml:"quit" json:"quit"`
}

// Actions returns the bindings keyed by action name, in a stable order.
func (k KeybindingsConfig) Actions() []KeyAction {
	return []KeyAction{
		{"split_horizontal", k.SplitHorizontal},
		{"split_vertical", k.SplitVertical},
		{"split_explorer", k.SplitExplorer},
		{"split_browser", k.SplitBrowser},
		{"close_pane", k.ClosePane},
		{"focus_left", k.FocusLeft},
		{"focus_right", k.FocusRight},
		{"focus_up", k.FocusUp},
		{"focus_down", k.FocusDown},
		{"swap_next", k.SwapNext},
		{"equalize", k.Equalize},
		{"new_tab", k.NewTab},
		{"close_tab", k.CloseTab},
		{"next_tab", k.NextTab},
		{"previous_tab", k.PreviousTab},
		{"quit", k.Quit},
	}
}

// KeyAction pairs an action name with its keys.
type KeyAction struct {
	Name string
	Keys []string
}
