package coordinator

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/domain/repository"
	"github.com/koder-native/kterm/internal/infrastructure/filesystem"
	"github.com/koder-native/kterm/internal/infrastructure/headless"
	"github.com/koder-native/kterm/internal/infrastructure/persistence/sessionfile"
	"github.com/koder-native/kterm/internal/logging"
	"github.com/koder-native/kterm/internal/ui/mainloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fixture struct {
	t         *testing.T
	ctx       context.Context
	loop      *mainloop.Loop
	provider  *headless.Provider
	repo      repository.SessionStateRepository
	path      string
	coord     *WorkspaceCoordinator
	titles    []string
	teardowns int
}

func newFixture(t *testing.T, sessionPath string) *fixture {
	t.Helper()
	f := &fixture{
		t:        t,
		ctx:      testContext(),
		loop:     mainloop.NewLoop(),
		provider: headless.New(t.TempDir()),
		path:     sessionPath,
	}

	n := 0
	cfg := WorkspaceCoordinatorConfig{
		Content:    f.provider,
		FileSystem: filesystem.New(),
		Post:       f.loop.Post,
		Titles: port.TitleSinkFunc(func(title string) {
			f.titles = append(f.titles, title)
		}),
		GenerateID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
		// Long enough that only explicit saves write during a test.
		AutosaveMs:    60_000,
		NavEpsilon:    1,
		SplitKind:     entity.KindTerminal,
		BrowserHome:   "https://example.org",
		DefaultWidth:  1200,
		DefaultHeight: 800,
	}
	if sessionPath != "" {
		f.repo = sessionfile.NewRepository(sessionPath)
		cfg.Repository = f.repo
	}

	f.coord = NewWorkspaceCoordinator(f.ctx, cfg)
	f.coord.SetOnTeardown(func() { f.teardowns++ })
	f.provider.OnExit(f.coord.NotifyExit)
	f.provider.OnTitle(f.coord.NotifyTitle)

	t.Cleanup(func() { _ = f.coord.Close(f.ctx) })
	return f
}

func (f *fixture) start() {
	f.t.Helper()
	require.NoError(f.t, f.coord.Start(f.ctx))
}

func (f *fixture) shape() string {
	return entity.Shape(f.coord.ActiveTab().Root)
}

func (f *fixture) token(p *entity.Pane) string {
	f.t.Helper()
	token, err := f.provider.IdentityToken(f.ctx, p.Content)
	require.NoError(f.t, err)
	return token
}

func sessionPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "session.json")
}

func TestWorkspace_StartFresh(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()

	w := f.coord.CurrentWindow()
	require.Equal(t, 1, w.Count())
	assert.Equal(t, 1200, w.Width)
	assert.Equal(t, 800, w.Height)

	pane := f.coord.ActivePane()
	require.NotNil(t, pane)
	assert.True(t, pane.Active)
	assert.Equal(t, entity.KindTerminal, pane.Kind)
	assert.Equal(t, pane.Content, f.provider.Focused())

	r, ok := f.coord.Allocator().Bounds(pane)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{W: 1200, H: 800}, r)
}

func TestWorkspace_StartWithoutSession(t *testing.T) {
	f := newFixture(t, "")
	f.start()

	assert.Equal(t, 1, f.coord.CurrentWindow().Count())
	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Horizontal))
	require.NoError(t, f.coord.SaveNow(f.ctx))
	require.NoError(t, f.coord.Close(f.ctx))
}

func TestWorkspace_SplitInheritsDirectoryAndFocus(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	first := f.coord.ActivePane()
	require.NoError(t, f.provider.SetToken(first.Content, "/srv/app"))

	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Horizontal))

	assert.Equal(t, "h(terminal,terminal)", f.shape())
	split := f.coord.ActiveTab().Root.(*entity.Split)
	assert.Equal(t, 600, split.Position)

	created := f.coord.ActivePane()
	assert.NotSame(t, first, created)
	assert.Same(t, created, split.End)
	assert.True(t, created.Active)
	assert.False(t, first.Active)
	assert.Equal(t, "/srv/app", f.token(created))
	assert.Equal(t, created.Content, f.provider.Focused())
}

func TestWorkspace_SplitBrowserOpensHome(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()

	require.NoError(t, f.coord.Split(f.ctx, entity.Vertical, entity.KindBrowser))

	assert.Equal(t, "v(terminal,browser)", f.shape())
	assert.Equal(t, "https://example.org", f.token(f.coord.ActivePane()))
}

func TestWorkspace_SplitFailureLeavesTree(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	f.provider.FailCreate(entity.KindExplorer, fmt.Errorf("no file manager"))

	err := f.coord.Split(f.ctx, entity.Horizontal, entity.KindExplorer)
	require.Error(t, err)
	assert.Equal(t, "terminal", f.shape())
}

func TestWorkspace_CloseActivePromotesSibling(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	first := f.coord.ActivePane()
	require.NoError(t, f.coord.Split(f.ctx, entity.Horizontal, entity.KindExplorer))
	require.NoError(t, f.coord.Split(f.ctx, entity.Vertical, entity.KindBrowser))
	require.Equal(t, "h(terminal,v(explorer,browser))", f.shape())

	require.NoError(t, f.coord.CloseActive(f.ctx))

	assert.Equal(t, "h(terminal,explorer)", f.shape())
	active := f.coord.ActivePane()
	assert.Equal(t, entity.KindExplorer, active.Kind)

	require.NoError(t, f.coord.ClosePane(f.ctx, active.ID))
	assert.Equal(t, "terminal", f.shape())
	assert.Same(t, first, f.coord.ActivePane())
	assert.Len(t, f.provider.Live(), 1)
}

func TestWorkspace_ContentExitClosesPaneOnLoop(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	first := f.coord.ActivePane()
	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Vertical))
	second := f.coord.ActivePane()

	require.NoError(t, f.provider.Exit(second.Content))
	assert.Equal(t, "v(terminal,terminal)", f.shape(), "nothing changes before the loop runs")

	f.loop.Drain()
	assert.Equal(t, "terminal", f.shape())
	assert.Same(t, first, f.coord.ActivePane())

	f.coord.NotifyExit(second.Content)
	f.loop.Drain()
	assert.Equal(t, "terminal", f.shape(), "a second exit for the same content is ignored")
}

func TestWorkspace_ContentExitInHiddenTabKeepsShownFocus(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	hidden := f.coord.ActiveTab()
	first := f.coord.ActivePane()
	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Vertical))
	second := f.coord.ActivePane()

	_, err := f.coord.NewTab(f.ctx, "")
	require.NoError(t, err)
	shown := f.coord.ActivePane()
	titles := len(f.titles)

	require.NoError(t, f.provider.Exit(second.Content))
	f.loop.Drain()

	assert.Equal(t, "terminal", entity.Shape(hidden.Root))
	assert.Equal(t, shown.Content, f.provider.Focused(), "keyboard focus stays in the shown tab")
	assert.True(t, shown.Active)
	assert.Len(t, f.titles, titles)

	assert.True(t, first.Active, "the hidden tab highlights its promoted pane")
	require.NoError(t, f.coord.PreviousTab(f.ctx))
	assert.Same(t, first, f.coord.ActivePane())
	assert.Equal(t, first.Content, f.provider.Focused())
}

func TestWorkspace_EmptyTabTeardownDeletesSession(t *testing.T) {
	path := sessionPath(t)
	f := newFixture(t, path)
	f.start()
	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Horizontal))
	require.NoError(t, f.coord.SaveNow(f.ctx))
	require.FileExists(t, path)

	for _, p := range f.coord.ActiveTab().Panes() {
		require.NoError(t, f.provider.Exit(p.Content))
	}
	f.loop.Drain()

	assert.True(t, f.coord.Closed())
	assert.Equal(t, 1, f.teardowns)
	assert.NoFileExists(t, path)

	assert.ErrorIs(t, f.coord.SplitDefault(f.ctx, entity.Horizontal), ErrWindowClosed)
	assert.False(t, f.coord.Navigate(f.ctx, usecase.NavLeft))
	require.NoError(t, f.coord.Close(f.ctx))
	assert.Equal(t, 1, f.teardowns, "close after teardown is a no-op")
}

func TestWorkspace_CloseLastPaneByKeyTearsDown(t *testing.T) {
	path := sessionPath(t)
	f := newFixture(t, path)
	f.start()

	require.NoError(t, f.coord.CloseActive(f.ctx))

	assert.True(t, f.coord.Closed())
	assert.NoFileExists(t, path)
	assert.Empty(t, f.provider.Live())
}

func TestWorkspace_TitleBurstCoalesces(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	pane := f.coord.ActivePane()

	for _, title := range []string{"bash", "make", "vim"} {
		require.NoError(t, f.provider.SetTitle(pane.Content, title))
	}
	assert.Empty(t, f.titles)

	f.loop.Drain()
	assert.Equal(t, []string{"vim"}, f.titles)
	assert.Equal(t, "vim", pane.Title)
	assert.Equal(t, "vim", f.coord.ActiveTab().Title())
}

func TestWorkspace_TitleForInactivePaneKeepsWindowTitle(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	first := f.coord.ActivePane()
	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Horizontal))

	require.NoError(t, f.provider.SetTitle(first.Content, "htop"))
	f.loop.Drain()

	assert.Equal(t, "htop", first.Title)
	assert.Empty(t, f.titles)
}

func TestWorkspace_Navigate(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	left := f.coord.ActivePane()
	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Horizontal))
	right := f.coord.ActivePane()

	assert.True(t, f.coord.Navigate(f.ctx, usecase.NavLeft))
	assert.Same(t, left, f.coord.ActivePane())
	assert.Equal(t, left.Content, f.provider.Focused())

	assert.False(t, f.coord.Navigate(f.ctx, usecase.NavLeft))
	assert.False(t, f.coord.Navigate(f.ctx, usecase.NavUp))
	assert.Same(t, left, f.coord.ActivePane())

	assert.True(t, f.coord.FocusPane(f.ctx, right.ID))
	assert.Same(t, right, f.coord.ActivePane())
	assert.False(t, f.coord.FocusPane(f.ctx, "missing"))
}

func TestWorkspace_DropSwapsPanes(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	term := f.coord.ActivePane()
	require.NoError(t, f.coord.Split(f.ctx, entity.Horizontal, entity.KindExplorer))
	files := f.coord.ActivePane()

	assert.True(t, f.coord.Drop(f.ctx, term.ID, files.ID))

	assert.Equal(t, "h(explorer,terminal)", f.shape())
	assert.Same(t, files, f.coord.ActivePane(), "focus stays with the same pane")
	r, ok := f.coord.Allocator().Bounds(files)
	require.True(t, ok)
	assert.Equal(t, 0, r.X, "layout follows the swap")

	assert.False(t, f.coord.Drop(f.ctx, term.ID, term.ID))
	assert.False(t, f.coord.Drop(f.ctx, "gone", term.ID))
}

func TestWorkspace_DropAcrossTabsKeepsOneHighlightPerTab(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	a := f.coord.ActivePane()
	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Horizontal))
	b := f.coord.ActivePane()
	_, err := f.coord.NewTab(f.ctx, "")
	require.NoError(t, err)
	c := f.coord.ActivePane()

	assert.True(t, f.coord.Drop(f.ctx, c.ID, b.ID))

	w := f.coord.CurrentWindow()
	for _, tab := range w.Tabs {
		active := 0
		for _, p := range tab.Panes() {
			if p.Active {
				active++
			}
		}
		assert.LessOrEqual(t, active, 1, "tab %s", tab.ID)
	}
	assert.Same(t, b, f.coord.ActivePane(), "the visible tab refocuses the pane it received")
	assert.False(t, a.Active)
}

func TestWorkspace_EqualizeAndDividers(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Horizontal))
	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Horizontal))

	root := f.coord.ActiveTab().Root.(*entity.Split)
	inner := root.End.(*entity.Split)

	require.NoError(t, f.coord.EqualizeDivider(f.ctx, inner.ID))
	assert.Equal(t, 400, root.Position)
	assert.Equal(t, 400, inner.Position)

	require.NoError(t, f.coord.SetDividerPosition(f.ctx, root.ID, 900))
	assert.Equal(t, 900, root.Position)

	require.NoError(t, f.coord.SetDividerPosition(f.ctx, root.ID, 5000))
	assert.Equal(t, 600, root.Position, "a divider dragged past the edge falls back to even")

	require.NoError(t, f.coord.Equalize(f.ctx, entity.Horizontal))
	assert.Equal(t, 400, root.Position)

	assert.NoError(t, f.coord.EqualizeDivider(f.ctx, "missing"))
	assert.NoError(t, f.coord.SetDividerPosition(f.ctx, "missing", 10))
}

func TestWorkspace_Tabs(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	first := f.coord.ActivePane()
	require.NoError(t, f.provider.SetToken(first.Content, "/work"))
	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Vertical))
	remembered := f.coord.ActivePane()

	tab2, err := f.coord.NewTab(f.ctx, "")
	require.NoError(t, err)
	w := f.coord.CurrentWindow()
	assert.Equal(t, 2, w.Count())
	assert.Same(t, tab2, f.coord.ActiveTab())
	assert.Equal(t, "/work", f.token(f.coord.ActivePane()), "new tab inherits the directory")

	require.NoError(t, f.coord.NextTab(f.ctx))
	assert.Equal(t, 0, w.ActiveIndex)
	assert.Same(t, remembered, f.coord.ActivePane())
	assert.Equal(t, remembered.Content, f.provider.Focused())

	require.NoError(t, f.coord.RenameTab(f.ctx, tab2.ID, "logs"))
	assert.Equal(t, "logs", tab2.Title())

	require.NoError(t, f.coord.MoveTab(f.ctx, tab2.ID, 0))
	assert.Same(t, tab2, w.Tabs[0])

	require.NoError(t, f.coord.CloseTab(f.ctx))
	assert.Equal(t, 1, w.Count())
	assert.Same(t, tab2, f.coord.ActiveTab())
	assert.Equal(t, f.coord.ActivePane().Content, f.provider.Focused())
	assert.Len(t, f.provider.Live(), 1)

	assert.ErrorIs(t, f.coord.SwitchTab(f.ctx, 4), usecase.ErrTabNotFound)
}

func TestWorkspace_ResizeRelayouts(t *testing.T) {
	f := newFixture(t, sessionPath(t))
	f.start()
	require.NoError(t, f.coord.SplitDefault(f.ctx, entity.Horizontal))
	split := f.coord.ActiveTab().Root.(*entity.Split)

	f.coord.Resize(f.ctx, 400, 300, true)

	w := f.coord.CurrentWindow()
	assert.True(t, w.Maximized)
	assert.LessOrEqual(t, split.Position, 400)
	r, ok := f.coord.Allocator().Bounds(split)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{W: 400, H: 300}, r)

	f.coord.Resize(f.ctx, 0, 300, false)
	assert.Equal(t, 400, w.Width, "degenerate sizes are ignored")
}

func TestWorkspace_SessionRoundTrip(t *testing.T) {
	path := sessionPath(t)
	dirA, dirB, dirC := t.TempDir(), t.TempDir(), t.TempDir()

	f := newFixture(t, path)
	f.start()
	first := f.coord.ActivePane()
	require.NoError(t, f.provider.SetToken(first.Content, dirA))
	require.NoError(t, f.coord.Split(f.ctx, entity.Vertical, entity.KindExplorer))
	require.NoError(t, f.provider.SetToken(f.coord.ActivePane().Content, dirB))
	_, err := f.coord.NewTab(f.ctx, dirC)
	require.NoError(t, err)
	require.NoError(t, f.coord.SwitchTab(f.ctx, 0))
	require.NoError(t, f.coord.Close(f.ctx))
	require.FileExists(t, path)
	assert.Empty(t, f.provider.Live(), "close destroys content")

	g := newFixture(t, path)
	g.start()

	w := g.coord.CurrentWindow()
	require.Equal(t, 2, w.Count())
	assert.Equal(t, 0, w.ActiveIndex)
	assert.Equal(t, 1200, w.Width)
	assert.Equal(t, "v(terminal,explorer)", g.shape())

	root := w.Tabs[0].Root.(*entity.Split)
	assert.Equal(t, 400, root.Position)
	assert.Equal(t, dirA, g.token(root.Start.(*entity.Pane)))
	assert.Equal(t, dirB, g.token(root.End.(*entity.Pane)))
	assert.Equal(t, dirC, g.token(w.Tabs[1].Root.(*entity.Pane)))
	assert.Same(t, root.Start, g.coord.ActivePane())
}
