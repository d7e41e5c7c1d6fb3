// Package model holds the Bubble Tea models behind interactive commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/cli/styles"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/domain/repository"
	"github.com/koder-native/kterm/internal/infrastructure/config"
	"github.com/koder-native/kterm/internal/infrastructure/headless"
	"github.com/koder-native/kterm/internal/logging"
	"github.com/koder-native/kterm/internal/ui/coordinator"
	"github.com/koder-native/kterm/internal/ui/mainloop"
)

// Pixel size of one terminal cell when the playground maps the terminal
// onto window geometry.
const (
	cellWidth  = 10
	cellHeight = 20
)

const drainInterval = 200 * time.Millisecond

type drainMsg struct{}

// ConfigWatcher reports config file edits. *config.Manager implements it.
type ConfigWatcher interface {
	Watch() error
	OnConfigChange(callback func(*config.Config))
}

// PlayModelConfig holds the dependencies of the playground.
type PlayModelConfig struct {
	Config     *config.Config
	Repository repository.SessionStateRepository // nil runs without a session
	FileSystem port.FileSystem
	GenerateID usecase.IDGenerator
	// Watcher, when set, applies keybinding and navigation edits live.
	Watcher ConfigWatcher
}

// PlayModel drives a real workspace whose panes are headless content, so
// splits, navigation, swaps and session restore can be tried from a
// terminal.
type PlayModel struct {
	ctx      context.Context
	theme    *styles.Theme
	keys     styles.WorkspaceKeyMap
	help     help.Model
	loop     *mainloop.Loop
	provider *headless.Provider
	coord    *coordinator.WorkspaceCoordinator

	width  int
	height int
	title  string
	status string
	err    error
}

// NewPlayModel creates the workspace and restores the stored session, if
// any.
func NewPlayModel(ctx context.Context, theme *styles.Theme, cfg PlayModelConfig) (*PlayModel, error) {
	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = config.DefaultConfig()
	}
	home, err := cfg.FileSystem.HomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home: %w", err)
	}
	kind, _ := entity.ParsePaneKind(appCfg.Workspace.DefaultSplitKind)

	m := &PlayModel{
		ctx:      logging.WithComponent(ctx, "play"),
		theme:    theme,
		keys:     styles.NewWorkspaceKeyMap(appCfg.Keybindings),
		help:     styles.NewStyledHelp(theme),
		loop:     mainloop.NewLoop(),
		provider: headless.New(home),
	}

	coordCfg := coordinator.WorkspaceCoordinatorConfig{
		Content:       m.provider,
		FileSystem:    cfg.FileSystem,
		Post:          m.loop.Post,
		Titles:        port.TitleSinkFunc(func(title string) { m.title = title }),
		GenerateID:    cfg.GenerateID,
		AutosaveMs:    appCfg.Session.AutosaveIntervalMs,
		NavEpsilon:    appCfg.Workspace.NavigationEpsilon,
		SplitKind:     kind,
		BrowserHome:   appCfg.Workspace.BrowserHome,
		DefaultWidth:  appCfg.Window.DefaultWidth,
		DefaultHeight: appCfg.Window.DefaultHeight,
	}
	if appCfg.Session.Enabled && cfg.Repository != nil {
		coordCfg.Repository = cfg.Repository
	}

	m.coord = coordinator.NewWorkspaceCoordinator(m.ctx, coordCfg)
	m.provider.OnExit(m.coord.NotifyExit)
	m.provider.OnTitle(m.coord.NotifyTitle)

	if err := m.coord.Start(m.ctx); err != nil {
		return nil, err
	}
	m.loop.Drain()

	if cfg.Watcher != nil {
		cfg.Watcher.OnConfigChange(func(c *config.Config) {
			m.loop.Post(func() { m.applyConfig(c) })
		})
		if err := cfg.Watcher.Watch(); err != nil {
			logging.FromContext(m.ctx).Warn().Err(err).Msg("config hot reload disabled")
		}
	}
	return m, nil
}

// applyConfig takes over the reloadable settings. Runs on the loop.
func (m *PlayModel) applyConfig(c *config.Config) {
	if c == nil {
		return
	}
	m.keys = styles.NewWorkspaceKeyMap(c.Keybindings)
	m.coord.SetNavEpsilon(c.Workspace.NavigationEpsilon)
	m.status = "config reloaded"
	logging.FromContext(m.ctx).Info().Msg("applied reloaded config")
}

// Init starts the loop that runs work posted from timers.
func (m *PlayModel) Init() tea.Cmd {
	return drainTick()
}

func drainTick() tea.Cmd {
	return tea.Tick(drainInterval, func(time.Time) tea.Msg { return drainMsg{} })
}

// Update handles messages.
func (m *PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.coord.Resize(m.ctx, msg.Width*cellWidth, m.canvasRows()*cellHeight, false)
		m.loop.Drain()
		return m, nil

	case drainMsg:
		m.loop.Drain()
		if m.coord.Closed() {
			return m, tea.Quit
		}
		return m, drainTick()

	case tea.KeyMsg:
		quit := m.handleKey(msg)
		m.loop.Drain()
		if quit || m.coord.Closed() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleKey runs the action bound to msg and reports whether the program
// should exit.
func (m *PlayModel) handleKey(msg tea.KeyMsg) bool {
	ctx := m.ctx
	m.err = nil
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.err = m.coord.Close(ctx)
		return true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		if m.width > 0 {
			m.coord.Resize(ctx, m.width*cellWidth, m.canvasRows()*cellHeight, false)
		}
	case key.Matches(msg, m.keys.SplitHorizontal):
		m.err = m.coord.SplitDefault(ctx, entity.Horizontal)
	case key.Matches(msg, m.keys.SplitVertical):
		m.err = m.coord.SplitDefault(ctx, entity.Vertical)
	case key.Matches(msg, m.keys.SplitExplorer):
		m.err = m.coord.Split(ctx, entity.Horizontal, entity.KindExplorer)
	case key.Matches(msg, m.keys.SplitBrowser):
		m.err = m.coord.Split(ctx, entity.Vertical, entity.KindBrowser)
	case key.Matches(msg, m.keys.ClosePane):
		m.err = m.coord.CloseActive(ctx)
	case key.Matches(msg, m.keys.ExitContent):
		if pane := m.coord.ActivePane(); pane != nil {
			m.err = m.provider.Exit(pane.Content)
		}
	case key.Matches(msg, m.keys.FocusLeft):
		m.navigate(usecase.NavLeft)
	case key.Matches(msg, m.keys.FocusRight):
		m.navigate(usecase.NavRight)
	case key.Matches(msg, m.keys.FocusUp):
		m.navigate(usecase.NavUp)
	case key.Matches(msg, m.keys.FocusDown):
		m.navigate(usecase.NavDown)
	case key.Matches(msg, m.keys.SwapNext):
		m.swapNext()
	case key.Matches(msg, m.keys.Equalize):
		if m.err = m.coord.Equalize(ctx, entity.Horizontal); m.err == nil {
			m.err = m.coord.Equalize(ctx, entity.Vertical)
		}
	case key.Matches(msg, m.keys.NewTab):
		_, m.err = m.coord.NewTab(ctx, "")
	case key.Matches(msg, m.keys.CloseTab):
		m.err = m.coord.CloseTab(ctx)
	case key.Matches(msg, m.keys.NextTab):
		m.err = m.coord.NextTab(ctx)
	case key.Matches(msg, m.keys.PreviousTab):
		m.err = m.coord.PreviousTab(ctx)
	}
	return false
}

func (m *PlayModel) navigate(dir usecase.Direction) {
	if !m.coord.Navigate(m.ctx, dir) {
		m.status = "no pane " + dir.String()
	}
}

// swapNext swaps the active pane with the one after it in tree order.
func (m *PlayModel) swapNext() {
	tab := m.coord.ActiveTab()
	active := m.coord.ActivePane()
	if tab == nil || active == nil {
		return
	}
	panes := tab.Panes()
	if len(panes) < 2 {
		m.status = "nothing to swap with"
		return
	}
	for i, p := range panes {
		if p.ID == active.ID {
			next := panes[(i+1)%len(panes)]
			m.coord.Drop(m.ctx, active.ID, next.ID)
			return
		}
	}
}

func (m *PlayModel) canvasRows() int {
	// tab bar, status line and short help
	rows := m.height - 3
	if m.help.ShowAll {
		rows = m.height - 8
	}
	return max(rows, 1)
}

// View renders the tab bar, the active tab's panes and the help line.
func (m *PlayModel) View() string {
	if m.coord.Closed() {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	sections := []string{
		m.renderTabBar(),
		m.renderPanes(),
		m.renderStatus(),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *PlayModel) renderTabBar() string {
	win := m.coord.CurrentWindow()
	tabs := make([]string, 0, len(win.Tabs))
	for i, tab := range win.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Title())
		if i == win.ActiveIndex {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.theme.InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *PlayModel) renderStatus() string {
	if m.err != nil {
		return m.theme.ErrorStyle.Render(m.err.Error())
	}
	if m.status != "" {
		return m.theme.WarningStyle.Render(m.status)
	}
	if pane := m.coord.ActivePane(); pane != nil {
		return m.theme.Subtle.Render(fmt.Sprintf("%s  %s", pane.ID, m.title))
	}
	return ""
}

func (m *PlayModel) renderPanes() string {
	win := m.coord.CurrentWindow()
	tab := m.coord.ActiveTab()
	if tab == nil || tab.Root == nil || win.Width <= 0 || win.Height <= 0 {
		return ""
	}
	return m.renderNode(tab.Root, win.Width, win.Height, m.width, m.canvasRows())
}

// renderNode renders node into the cells its laid-out bounds cover. Splits
// join their children, so the result always fills the node's cells.
func (m *PlayModel) renderNode(node entity.PaneNode, winW, winH, cols, rows int) string {
	bounds, ok := m.coord.Allocator().Bounds(node)
	if !ok {
		return ""
	}
	cell := scaleRect(bounds, winW, winH, cols, rows)

	switch n := node.(type) {
	case *entity.Split:
		start := m.renderNode(n.Start, winW, winH, cols, rows)
		end := m.renderNode(n.End, winW, winH, cols, rows)
		if n.Orientation == entity.Vertical {
			return lipgloss.JoinVertical(lipgloss.Left, start, end)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, start, end)
	case *entity.Pane:
		token := ""
		if c, ok := m.provider.Lookup(n.Content); ok {
			token = c.Token
		}
		style := m.theme.PaneTile
		if n.Active {
			style = m.theme.PaneTileActive
		}
		return renderTile(style, cell.W, cell.H, n.Kind.String(), token)
	}
	return ""
}

// scaleRect maps a window rectangle in pixels onto terminal cells. Shared
// edges map to the same cell, so neighbouring tiles share no columns.
func scaleRect(r entity.Rect, winW, winH, cols, rows int) entity.Rect {
	x0 := r.X * cols / winW
	y0 := r.Y * rows / winH
	x1 := (r.X + r.W) * cols / winW
	y1 := (r.Y + r.H) * rows / winH
	return entity.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// renderTile draws a width x height tile framed by style's border. Lines
// longer than the inside are cut; a tile too small for a border is blank.
func renderTile(style lipgloss.Style, width, height int, lines ...string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 2 || height < 2 {
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "")
	}

	inner := width - 2
	clip := lipgloss.NewStyle().MaxWidth(inner)
	body := make([]string, 0, len(lines))
	for _, line := range lines {
		body = append(body, clip.Render(line))
	}
	if len(body) > height-2 {
		body = body[:height-2]
	}
	return style.
		Width(inner).
		Height(height - 2).
		Render(strings.Join(body, "\n"))
}
