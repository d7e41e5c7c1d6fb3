// Package coordinator wires window events (keys, drags, provider
// callbacks) to the layout use cases. Every method except NotifyExit and
// NotifyTitle must run on the UI loop.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/domain/repository"
	"github.com/koder-native/kterm/internal/infrastructure/snapshot"
	"github.com/koder-native/kterm/internal/logging"
	"github.com/koder-native/kterm/internal/ui/layout"
	"github.com/koder-native/kterm/internal/ui/mainloop"
)

// ErrWindowClosed is returned by operations issued after teardown.
var ErrWindowClosed = errors.New("window is closed")

// WorkspaceCoordinator owns one window and drives every pane operation
// against it.
type WorkspaceCoordinator struct {
	window    *entity.Window
	allocator *layout.Allocator

	content          port.ContentProvider
	panesUC          *usecase.ManagePanesUseCase
	tabsUC           *usecase.ManageTabsUseCase
	navigateUC       *usecase.NavigateFocusUseCase
	swapUC           *usecase.SwapPanesUseCase
	restoreUC        *usecase.RestoreSessionUseCase
	focus            *usecase.FocusTracker
	snapshots        *snapshot.Service
	coalescer        *mainloop.Coalescer
	post             func(func()) bool
	defaultSplitKind entity.PaneKind
	browserHome      string
	defaultWidth     int
	defaultHeight    int

	ctx    context.Context
	closed bool

	// Callbacks to avoid circular dependencies
	onTeardown     func()
	onStateChanged func()
}

// WorkspaceCoordinatorConfig holds configuration for WorkspaceCoordinator.
type WorkspaceCoordinatorConfig struct {
	Content    port.ContentProvider
	FileSystem port.FileSystem
	// Repository stores the session. Nil disables restore and autosave.
	Repository repository.SessionStateRepository
	// Post schedules work on the UI loop, usually mainloop.Loop.Post.
	Post        func(func()) bool
	Titles      port.TitleSink
	GenerateID  usecase.IDGenerator
	Allocator   *layout.Allocator
	AutosaveMs  int
	NavEpsilon  float64
	SplitKind   entity.PaneKind
	BrowserHome string
	// DefaultWidth and DefaultHeight size a window that was not restored.
	DefaultWidth  int
	DefaultHeight int
}

// NewWorkspaceCoordinator creates a new WorkspaceCoordinator. The window
// exists only after Start.
func NewWorkspaceCoordinator(ctx context.Context, cfg WorkspaceCoordinatorConfig) *WorkspaceCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating workspace coordinator")

	allocator := cfg.Allocator
	if allocator == nil {
		allocator = layout.NewAllocator()
	}

	c := &WorkspaceCoordinator{
		allocator:        allocator,
		content:          cfg.Content,
		panesUC:          usecase.NewManagePanesUseCase(cfg.Content, allocator, cfg.GenerateID),
		tabsUC:           usecase.NewManageTabsUseCase(cfg.Content, cfg.GenerateID),
		navigateUC:       usecase.NewNavigateFocusUseCase(allocator, cfg.NavEpsilon),
		swapUC:           usecase.NewSwapPanesUseCase(),
		focus:            usecase.NewFocusTracker(cfg.Content, cfg.Titles),
		coalescer:        mainloop.NewCoalescer(cfg.Post),
		post:             cfg.Post,
		defaultSplitKind: cfg.SplitKind,
		browserHome:      cfg.BrowserHome,
		defaultWidth:     cfg.DefaultWidth,
		defaultHeight:    cfg.DefaultHeight,
	}

	if cfg.Repository != nil {
		c.restoreUC = usecase.NewRestoreSessionUseCase(cfg.Repository, cfg.Content, cfg.FileSystem, cfg.GenerateID)
		snapshotUC := usecase.NewSnapshotSessionUseCase(cfg.Repository, cfg.Content)
		c.snapshots = snapshot.NewService(snapshotUC, c, cfg.Post, cfg.AutosaveMs)
	}
	return c
}

// SetOnTeardown sets the callback run once the window is gone, either
// because its last pane closed or because Close was called.
func (c *WorkspaceCoordinator) SetOnTeardown(fn func()) {
	c.onTeardown = fn
}

// SetOnStateChanged sets the callback run after every layout mutation.
func (c *WorkspaceCoordinator) SetOnStateChanged(fn func()) {
	c.onStateChanged = fn
}

// CurrentWindow implements port.WindowProvider.
func (c *WorkspaceCoordinator) CurrentWindow() *entity.Window {
	return c.window
}

// Allocator exposes the layout of the window's tabs.
func (c *WorkspaceCoordinator) Allocator() *layout.Allocator {
	return c.allocator
}

// Closed reports whether the window was torn down.
func (c *WorkspaceCoordinator) Closed() bool {
	return c.closed
}

// Start restores the session (or opens a fresh terminal), lays the window
// out and focuses the first pane of the active tab.
func (c *WorkspaceCoordinator) Start(ctx context.Context) error {
	log := logging.FromContext(ctx)
	c.ctx = ctx

	var focusTarget *entity.Pane
	if c.restoreUC != nil {
		out, err := c.restoreUC.Execute(ctx)
		if err != nil {
			return fmt.Errorf("start window: %w", err)
		}
		c.window = out.Window
		focusTarget = out.FocusTarget
		if !out.Restored {
			c.applyDefaultSize()
		}
	} else {
		c.window = entity.NewWindow()
		c.applyDefaultSize()
		tab, err := c.tabsUC.Create(ctx, usecase.CreateTabInput{Window: c.window})
		if err != nil {
			return fmt.Errorf("start window: %w", err)
		}
		focusTarget = entity.FirstLeaf(tab.Root)
	}

	c.relayout()
	if tab := c.window.ActiveTab(); tab != nil && focusTarget != nil {
		c.focus.Enter(ctx, tab, focusTarget)
	}

	if c.snapshots != nil {
		c.snapshots.Start(ctx)
	}

	log.Info().
		Int("tab_count", c.window.Count()).
		Int("pane_count", c.window.PaneCount()).
		Msg("window started")
	return nil
}

func (c *WorkspaceCoordinator) applyDefaultSize() {
	if c.defaultWidth > 0 {
		c.window.Width = c.defaultWidth
	}
	if c.defaultHeight > 0 {
		c.window.Height = c.defaultHeight
	}
}

// ActiveTab returns the visible tab.
func (c *WorkspaceCoordinator) ActiveTab() *entity.Tab {
	if c.window == nil {
		return nil
	}
	return c.window.ActiveTab()
}

// ActivePane returns the focused pane of the visible tab.
func (c *WorkspaceCoordinator) ActivePane() *entity.Pane {
	tab := c.ActiveTab()
	if tab == nil {
		return nil
	}
	if p := c.focus.ActivePane(tab); p != nil {
		return p
	}
	return entity.FirstLeaf(tab.Root)
}

// SplitDefault splits the active pane with the configured default kind.
func (c *WorkspaceCoordinator) SplitDefault(ctx context.Context, orientation entity.Orientation) error {
	return c.Split(ctx, orientation, c.defaultSplitKind)
}

// Split splits the active pane; the new pane takes the end slot and focus.
func (c *WorkspaceCoordinator) Split(ctx context.Context, orientation entity.Orientation, kind entity.PaneKind) error {
	if c.closed {
		return ErrWindowClosed
	}
	log := logging.FromContext(ctx)
	tab := c.ActiveTab()
	target := c.ActivePane()
	if tab == nil || target == nil {
		log.Debug().Msg("split skipped: no active pane")
		return nil
	}

	out, err := c.panesUC.Split(ctx, usecase.SplitPaneInput{
		Tab:         tab,
		Target:      target,
		Orientation: orientation,
		Kind:        kind,
		InitParam:   c.initParam(ctx, target, kind),
	})
	if err != nil {
		return err
	}

	c.relayoutTab(tab)
	c.focus.Enter(ctx, tab, out.NewPane)
	c.stateChanged()
	return nil
}

// initParam picks where new content starts: browsers open the home page,
// terminals and explorers inherit the directory of the pane being split.
func (c *WorkspaceCoordinator) initParam(ctx context.Context, from *entity.Pane, kind entity.PaneKind) string {
	if kind == entity.KindBrowser {
		return c.browserHome
	}
	if from == nil || from.Kind == entity.KindBrowser {
		return ""
	}
	token, err := c.content.IdentityToken(ctx, from.Content)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("could not read directory of split pane")
		return ""
	}
	return token
}

// CloseActive closes the focused pane.
func (c *WorkspaceCoordinator) CloseActive(ctx context.Context) error {
	if c.closed {
		return ErrWindowClosed
	}
	tab := c.ActiveTab()
	pane := c.ActivePane()
	if tab == nil || pane == nil {
		return nil
	}
	return c.closePane(ctx, tab, pane, false)
}

// ClosePane closes a pane by id in whichever tab holds it.
func (c *WorkspaceCoordinator) ClosePane(ctx context.Context, id entity.PaneID) error {
	if c.closed {
		return ErrWindowClosed
	}
	tab, pane := c.window.FindPane(id)
	if pane == nil {
		logging.FromContext(ctx).Debug().Str("pane_id", string(id)).Msg("close skipped: pane not found")
		return nil
	}
	return c.closePane(ctx, tab, pane, false)
}

func (c *WorkspaceCoordinator) closePane(ctx context.Context, tab *entity.Tab, pane *entity.Pane, exited bool) error {
	ctx = logging.WithPane(ctx, tab, pane)
	wasActive := c.focus.ActivePane(tab) == pane

	out, err := c.panesUC.Close(ctx, usecase.ClosePaneInput{Tab: tab, Pane: pane, ContentExited: exited})
	if err != nil {
		return err
	}

	if out.TabEmptied {
		return c.dropTab(ctx, tab)
	}

	c.relayoutTab(tab)
	if wasActive || c.focus.ActivePane(tab) == nil {
		if tab == c.ActiveTab() {
			c.focus.Enter(ctx, tab, out.FocusTarget)
		} else {
			c.focus.Remember(tab, out.FocusTarget)
		}
	}
	c.stateChanged()
	return nil
}

// dropTab removes a tab whose panes are already gone and tears the window
// down when it was the last one.
func (c *WorkspaceCoordinator) dropTab(ctx context.Context, tab *entity.Tab) error {
	c.focus.Forget(tab.ID)
	c.allocator.Forget(tab.ID)

	if c.tabsUC.Remove(ctx, c.window, tab.ID) {
		return c.teardown(ctx)
	}
	c.activateCurrentTab(ctx)
	c.stateChanged()
	return nil
}

// Equalize equalizes the active tab along orientation.
func (c *WorkspaceCoordinator) Equalize(ctx context.Context, orientation entity.Orientation) error {
	if c.closed {
		return ErrWindowClosed
	}
	tab := c.ActiveTab()
	if tab == nil {
		return nil
	}
	if err := c.panesUC.Equalize(ctx, tab, orientation); err != nil {
		return err
	}
	c.relayoutTab(tab)
	c.stateChanged()
	return nil
}

// EqualizeDivider handles a double click on a divider of the active tab.
func (c *WorkspaceCoordinator) EqualizeDivider(ctx context.Context, splitID string) error {
	if c.closed {
		return ErrWindowClosed
	}
	tab := c.ActiveTab()
	if tab == nil {
		return nil
	}
	if err := c.panesUC.EqualizeFromDivider(ctx, tab, splitID); err != nil {
		if errors.Is(err, usecase.ErrSplitNotFound) {
			logging.FromContext(ctx).Debug().Err(err).Msg("equalize skipped")
			return nil
		}
		return err
	}
	c.relayoutTab(tab)
	c.stateChanged()
	return nil
}

// SetDividerPosition handles a divider drag in the active tab.
func (c *WorkspaceCoordinator) SetDividerPosition(ctx context.Context, splitID string, position int) error {
	if c.closed {
		return ErrWindowClosed
	}
	tab := c.ActiveTab()
	if tab == nil {
		return nil
	}
	if err := c.panesUC.SetPosition(ctx, tab, splitID, position); err != nil {
		if errors.Is(err, usecase.ErrSplitNotFound) {
			logging.FromContext(ctx).Debug().Err(err).Msg("divider move skipped")
			return nil
		}
		return err
	}
	c.relayoutTab(tab)
	c.stateChanged()
	return nil
}

// Resize records a new window size and lays every tab out again.
func (c *WorkspaceCoordinator) Resize(ctx context.Context, width, height int, maximized bool) {
	if c.closed || width <= 0 || height <= 0 {
		return
	}
	c.window.Width, c.window.Height, c.window.Maximized = width, height, maximized
	c.relayout()
	logging.FromContext(ctx).Debug().Int("width", width).Int("height", height).Msg("window resized")
	c.stateChanged()
}

// Close saves the session and destroys all content. The saved document
// keeps every tab so the next start restores them.
func (c *WorkspaceCoordinator) Close(ctx context.Context) error {
	if c.closed {
		return nil
	}
	log := logging.FromContext(ctx)

	var saveErr error
	if c.snapshots != nil {
		saveErr = c.snapshots.Stop(ctx)
		if saveErr != nil {
			log.Error().Err(saveErr).Msg("failed to save session on close")
		}
	}

	for _, tab := range c.window.Tabs {
		for _, p := range tab.Panes() {
			if err := c.content.DestroyPane(ctx, p.Content); err != nil {
				log.Debug().Err(err).Str("pane_id", string(p.ID)).Msg("destroy on close failed")
			}
		}
	}

	c.finish()
	log.Info().Msg("window closed")
	return saveErr
}

// teardown ends a window whose last tab went away. Saving an empty window
// deletes the stored session.
func (c *WorkspaceCoordinator) teardown(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Info().Msg("last tab closed, tearing window down")

	var saveErr error
	if c.snapshots != nil {
		if saveErr = c.snapshots.Stop(ctx); saveErr != nil {
			log.Error().Err(saveErr).Msg("failed to clear session on teardown")
		}
	}
	c.finish()
	return saveErr
}

func (c *WorkspaceCoordinator) finish() {
	c.closed = true
	c.coalescer.Destroy()
	if c.onTeardown != nil {
		c.onTeardown()
	}
}

// relayout lays out every tab against the current content area.
func (c *WorkspaceCoordinator) relayout() {
	for _, tab := range c.window.Tabs {
		c.relayoutTab(tab)
	}
}

func (c *WorkspaceCoordinator) relayoutTab(tab *entity.Tab) {
	c.allocator.Layout(tab.ID, tab.Root, c.window.ContentArea())
}

func (c *WorkspaceCoordinator) stateChanged() {
	if c.snapshots != nil {
		c.snapshots.MarkDirty()
	}
	if c.onStateChanged != nil {
		c.onStateChanged()
	}
}

// SaveNow writes the session immediately if it changed.
func (c *WorkspaceCoordinator) SaveNow(ctx context.Context) error {
	if c.snapshots == nil {
		return nil
	}
	return c.snapshots.SaveNow(ctx)
}

var _ port.WindowProvider = (*WorkspaceCoordinator)(nil)
