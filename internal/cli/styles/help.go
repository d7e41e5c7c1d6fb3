package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/koder-native/kterm/internal/infrastructure/config"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// WorkspaceKeyMap defines keybindings for the workspace playground.
type WorkspaceKeyMap struct {
	SplitHorizontal key.Binding
	SplitVertical   key.Binding
	SplitExplorer   key.Binding
	SplitBrowser    key.Binding
	ClosePane       key.Binding
	FocusLeft       key.Binding
	FocusRight      key.Binding
	FocusUp         key.Binding
	FocusDown       key.Binding
	SwapNext        key.Binding
	Equalize        key.Binding
	NewTab          key.Binding
	CloseTab        key.Binding
	NextTab         key.Binding
	PreviousTab     key.Binding
	ExitContent     key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k WorkspaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitHorizontal, k.SplitVertical, k.ClosePane, k.SwapNext, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k WorkspaceKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitHorizontal, k.SplitVertical, k.SplitExplorer, k.SplitBrowser},
		{k.FocusLeft, k.FocusRight, k.FocusUp, k.FocusDown},
		{k.ClosePane, k.ExitContent, k.SwapNext, k.Equalize},
		{k.NewTab, k.CloseTab, k.NextTab, k.PreviousTab},
		{k.Help, k.Quit},
	}
}

// NewWorkspaceKeyMap builds the playground keymap from configured bindings.
func NewWorkspaceKeyMap(kb config.KeybindingsConfig) WorkspaceKeyMap {
	return WorkspaceKeyMap{
		SplitHorizontal: binding(kb.SplitHorizontal, "split right"),
		SplitVertical:   binding(kb.SplitVertical, "split down"),
		SplitExplorer:   binding(kb.SplitExplorer, "open explorer"),
		SplitBrowser:    binding(kb.SplitBrowser, "open browser"),
		ClosePane:       binding(kb.ClosePane, "close pane"),
		FocusLeft:       binding(kb.FocusLeft, "focus left"),
		FocusRight:      binding(kb.FocusRight, "focus right"),
		FocusUp:         binding(kb.FocusUp, "focus up"),
		FocusDown:       binding(kb.FocusDown, "focus down"),
		SwapNext:        binding(kb.SwapNext, "swap with next"),
		Equalize:        binding(kb.Equalize, "equalize"),
		NewTab:          binding(kb.NewTab, "new tab"),
		CloseTab:        binding(kb.CloseTab, "close tab"),
		NextTab:         binding(kb.NextTab, "next tab"),
		PreviousTab:     binding(kb.PreviousTab, "prev tab"),
		// Simulates the shell in the active pane exiting on its own.
		ExitContent: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "exit content"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: binding(kb.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
