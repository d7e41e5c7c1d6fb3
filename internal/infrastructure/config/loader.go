package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	// explicit is set when the caller chose the file; a missing explicit
	// file is an error instead of a template to create.
	explicit bool
}

// NewManager creates a new configuration manager. An empty configFile
// searches the XDG config directory.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
	}

	// KTERM_SESSION_ENABLED, KTERM_WORKSPACE_DEFAULT_SPLIT_KIND, ...
	v.SetEnvPrefix("KTERM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "KTERM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind KTERM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "KTERM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind KTERM_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("session.path", "KTERM_SESSION_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind KTERM_SESSION_FILE: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		explicit:  configFile != "",
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := normalizeConfig(config); err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) || m.explicit {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	return m.viper.SafeWriteConfigAs(configFile)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", m.viper.ConfigFileUsed(), err)
	}
	return config, nil
}

// normalizeConfig lowercases enum-like values and resolves the session path.
func normalizeConfig(config *Config) error {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Workspace.DefaultSplitKind = strings.ToLower(strings.TrimSpace(config.Workspace.DefaultSplitKind))

	if config.Session.Path == "" {
		path, err := GetSessionFile()
		if err != nil {
			return fmt.Errorf("failed to resolve session file: %w", err)
		}
		config.Session.Path = path
	} else if !filepath.IsAbs(config.Session.Path) {
		dir, err := GetConfigDir()
		if err != nil {
			return fmt.Errorf("failed to resolve session file: %w", err)
		}
		config.Session.Path = filepath.Join(dir, config.Session.Path)
	}
	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	cfg := *m.config
	cfg.Keybindings = cloneKeybindings(m.config.Keybindings)
	return &cfg
}

// GetConfigFile returns the path of the file that was loaded.
func (m *Manager) GetConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.ConfigFileUsed()
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("session.enabled", defaults.Session.Enabled)
	m.viper.SetDefault("session.path", defaults.Session.Path)
	m.viper.SetDefault("session.autosave_interval_ms", defaults.Session.AutosaveIntervalMs)

	m.viper.SetDefault("window.default_width", defaults.Window.DefaultWidth)
	m.viper.SetDefault("window.default_height", defaults.Window.DefaultHeight)

	m.viper.SetDefault("workspace.default_split_kind", defaults.Workspace.DefaultSplitKind)
	m.viper.SetDefault("workspace.navigation_epsilon", defaults.Workspace.NavigationEpsilon)
	m.viper.SetDefault("workspace.browser_home", defaults.Workspace.BrowserHome)

	for _, action := range defaults.Keybindings.Actions() {
		m.viper.SetDefault("keybindings."+action.Name, action.Keys)
	}
}

func cloneKeybindings(k KeybindingsConfig) KeybindingsConfig {
	c := func(keys []string) []string {
		return append([]string(nil), keys...)
	}
	return KeybindingsConfig{
		SplitHorizontal: c(k.SplitHorizontal),
		SplitVertical:   c(k.SplitVertical),
		SplitExplorer:   c(k.SplitExplorer),
		SplitBrowser:    c(k.SplitBrowser),
		ClosePane:       c(k.ClosePane),
		FocusLeft:       c(k.FocusLeft),
		FocusRight:      c(k.FocusRight),
		FocusUp:         c(k.FocusUp),
		FocusDown:       c(k.FocusDown),
		SwapNext:        c(k.SwapNext),
		Equalize:        c(k.Equalize),
		NewTab:          c(k.NewTab),
		CloseTab:        c(k.CloseTab),
		NextTab:         c(k.NextTab),
		PreviousTab:     c(k.PreviousTab),
		Quit:            c(k.Quit),
	}
}

var (
	globalManager *Manager
	globalMu      sync.Mutex
)

// Init creates, loads and installs the process-wide manager.
func Init(configFile string) (*Manager, error) {
	mgr, err := NewManager(configFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}

	globalMu.Lock()
	globalManager = mgr
	globalMu.Unlock()
	return mgr, nil
}

// Get returns the process-wide configuration, or defaults before Init.
func Get() *Config {
	globalMu.Lock()
	mgr := globalManager
	globalMu.Unlock()

	if mgr == nil {
		return DefaultConfig()
	}
	return mgr.Get()
}
