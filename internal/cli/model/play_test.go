package model

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koder-native/kterm/internal/cli/styles"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/infrastructure/config"
	"github.com/koder-native/kterm/internal/infrastructure/filesystem"
	"github.com/koder-native/kterm/internal/infrastructure/persistence/sessionfile"
	"github.com/koder-native/kterm/internal/logging"
)

func newTestPlayModel(t *testing.T, sessionPath string) *PlayModel {
	t.Helper()
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console"))

	n := 0
	cfg := PlayModelConfig{
		Config:     config.DefaultConfig(),
		FileSystem: filesystem.New(),
		GenerateID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
	if sessionPath != "" {
		cfg.Repository = sessionfile.NewRepository(sessionPath)
	}

	m, err := NewPlayModel(ctx, styles.NewTheme(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.coord.Close(ctx) })

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestPlayModel_SplitAndRender(t *testing.T) {
	m := newTestPlayModel(t, "")

	m.Update(runes("|"))
	tab := m.coord.ActiveTab()
	require.Equal(t, 2, tab.PaneCount())
	assert.Equal(t, "h(terminal,terminal)", entity.Shape(tab.Root))

	view := m.View()
	assert.Contains(t, view, "╔", "active pane is drawn with a double border")
	assert.Contains(t, view, "╭", "inactive pane is drawn with a rounded border")
	assert.Contains(t, view, "terminal")
}

func TestPlayModel_NavigateAndSwap(t *testing.T) {
	m := newTestPlayModel(t, "")
	m.Update(runes("|"))
	right := m.coord.ActivePane()

	m.Update(runes("h"))
	left := m.coord.ActivePane()
	require.NotEqual(t, right.ID, left.ID)

	m.Update(runes("h"))
	assert.Equal(t, "no pane left", m.status)

	m.Update(runes("s"))
	panes := m.coord.ActiveTab().Panes()
	assert.Equal(t, right.ID, panes[0].ID)
	assert.Equal(t, left.ID, panes[1].ID)
}

func TestPlayModel_ContentExitClosesLastPaneAndQuits(t *testing.T) {
	m := newTestPlayModel(t, "")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.True(t, m.coord.Closed())
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestPlayModel_QuitSavesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	m := newTestPlayModel(t, path)
	m.Update(runes("-"))

	_, cmd := m.Update(runes("q"))
	require.True(t, isQuit(cmd))

	doc, err := sessionfile.NewRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Tabs, 1)
	assert.Equal(t, entity.NodeTypeSplit, doc.Tabs[0].Type)
	assert.Equal(t, "vertical", doc.Tabs[0].Orientation)
}

func TestPlayModel_Tabs(t *testing.T) {
	m := newTestPlayModel(t, "")

	m.Update(runes("t"))
	require.Equal(t, 2, m.coord.CurrentWindow().Count())
	assert.Equal(t, 1, m.coord.CurrentWindow().ActiveIndex)

	m.Update(runes("]"))
	assert.Equal(t, 0, m.coord.CurrentWindow().ActiveIndex)

	m.Update(runes("T"))
	assert.Equal(t, 1, m.coord.CurrentWindow().Count())
}

type fakeWatcher struct {
	watching bool
	callback func(*config.Config)
}

func (w *fakeWatcher) Watch() error {
	w.watching = true
	return nil
}

func (w *fakeWatcher) OnConfigChange(callback func(*config.Config)) {
	w.callback = callback
}

func TestPlayModel_ConfigReloadRebindsKeys(t *testing.T) {
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console"))
	watcher := &fakeWatcher{}
	n := 0
	m, err := NewPlayModel(ctx, styles.NewTheme(), PlayModelConfig{
		Config:     config.DefaultConfig(),
		FileSystem: filesystem.New(),
		GenerateID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		Watcher:    watcher,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.coord.Close(ctx) })
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	require.True(t, watcher.watching)
	require.NotNil(t, watcher.callback)

	edited := config.DefaultConfig()
	edited.Keybindings.SplitHorizontal = []string{"X"}
	watcher.callback(edited)
	assert.Equal(t, 1, m.coord.ActiveTab().PaneCount(), "reload waits for the loop")

	m.Update(drainMsg{})
	assert.Equal(t, "config reloaded", m.status)

	m.Update(runes("X"))
	assert.Equal(t, "h(terminal,terminal)", entity.Shape(m.coord.ActiveTab().Root))

	m.Update(runes("|"))
	assert.Equal(t, 2, m.coord.ActiveTab().PaneCount(), "the old key no longer splits")
}

func TestScaleRect(t *testing.T) {
	left := scaleRect(entity.Rect{X: 0, Y: 0, W: 400, H: 600}, 800, 600, 80, 20)
	right := scaleRect(entity.Rect{X: 400, Y: 0, W: 400, H: 600}, 800, 600, 80, 20)

	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 40, H: 20}, left)
	assert.Equal(t, entity.Rect{X: 40, Y: 0, W: 40, H: 20}, right)
}

func TestRenderTile(t *testing.T) {
	theme := styles.NewTheme()

	tile := renderTile(theme.PaneTile, 6, 3, "abcdefgh", "second")
	assert.Equal(t, "╭────╮\n│abcd│\n╰────╯", ansi.Strip(tile))

	active := renderTile(theme.PaneTileActive, 6, 4, "ab")
	assert.Equal(t, "╔════╗\n║ab  ║\n║    ║\n╚════╝", ansi.Strip(active))

	assert.Equal(t, 1, lipgloss.Width(renderTile(theme.PaneTile, 1, 5, "x")))
}

func TestPlayModel_TilesFillCanvas(t *testing.T) {
	m := newTestPlayModel(t, "")
	m.Update(runes("|"))
	m.Update(runes("-"))

	panes := m.renderPanes()
	assert.Equal(t, m.width, lipgloss.Width(panes))
	assert.Equal(t, m.canvasRows(), lipgloss.Height(panes))
	assert.Equal(t, 1, strings.Count(ansi.Strip(panes), "╔"), "one active tile")
}
