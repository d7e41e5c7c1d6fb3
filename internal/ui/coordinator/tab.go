package coordinator

import (
	"context"

	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/logging"
)

// NewTab opens a tab with one terminal. An empty cwd inherits the
// directory of the focused pane.
func (c *WorkspaceCoordinator) NewTab(ctx context.Context, cwd string) (*entity.Tab, error) {
	if c.closed {
		return nil, ErrWindowClosed
	}
	if cwd == "" {
		cwd = c.initParam(ctx, c.ActivePane(), entity.KindTerminal)
	}

	tab, err := c.tabsUC.Create(ctx, usecase.CreateTabInput{Window: c.window, Cwd: cwd})
	if err != nil {
		c.activateCurrentTab(ctx)
		return nil, err
	}

	c.relayoutTab(tab)
	c.focus.Enter(ctx, tab, entity.FirstLeaf(tab.Root))
	c.stateChanged()
	return tab, nil
}

// CloseTab destroys every pane of the active tab.
func (c *WorkspaceCoordinator) CloseTab(ctx context.Context) error {
	tab := c.ActiveTab()
	if tab == nil {
		return nil
	}
	return c.CloseTabByID(ctx, tab.ID)
}

// CloseTabByID destroys every pane of a tab. Closing the last tab tears
// the window down.
func (c *WorkspaceCoordinator) CloseTabByID(ctx context.Context, id entity.TabID) error {
	if c.closed {
		return ErrWindowClosed
	}
	if c.window.FindTab(id) == nil {
		logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("close skipped: tab not found")
		return nil
	}

	c.focus.Forget(id)
	c.allocator.Forget(id)
	empty, err := c.tabsUC.Close(ctx, c.window, id)
	if err != nil {
		return err
	}
	if empty {
		return c.teardown(ctx)
	}
	c.activateCurrentTab(ctx)
	c.stateChanged()
	return nil
}

// SwitchTab shows the tab at index.
func (c *WorkspaceCoordinator) SwitchTab(ctx context.Context, index int) error {
	return c.changeTab(ctx, func() error { return c.tabsUC.Switch(ctx, c.window, index) })
}

// NextTab shows the next tab, wrapping around.
func (c *WorkspaceCoordinator) NextTab(ctx context.Context) error {
	return c.changeTab(ctx, func() error { return c.tabsUC.Next(ctx, c.window) })
}

// PreviousTab shows the previous tab, wrapping around.
func (c *WorkspaceCoordinator) PreviousTab(ctx context.Context) error {
	return c.changeTab(ctx, func() error { return c.tabsUC.Previous(ctx, c.window) })
}

func (c *WorkspaceCoordinator) changeTab(ctx context.Context, change func() error) error {
	if c.closed {
		return ErrWindowClosed
	}
	before := c.ActiveTab()
	if err := change(); err != nil {
		return err
	}
	if c.ActiveTab() == before {
		return nil
	}
	c.activateCurrentTab(ctx)
	c.stateChanged()
	return nil
}

// MoveTab reorders a tab.
func (c *WorkspaceCoordinator) MoveTab(ctx context.Context, id entity.TabID, newPos int) error {
	if c.closed {
		return ErrWindowClosed
	}
	if err := c.tabsUC.Move(ctx, c.window, id, newPos); err != nil {
		return err
	}
	c.stateChanged()
	return nil
}

// RenameTab sets a custom tab title; an empty name restores the pane title.
func (c *WorkspaceCoordinator) RenameTab(ctx context.Context, id entity.TabID, name string) error {
	if c.closed {
		return ErrWindowClosed
	}
	return c.tabsUC.Rename(ctx, c.window, id, name)
}

// activateCurrentTab lays out the now visible tab and gives focus back to
// the pane that last had it there.
func (c *WorkspaceCoordinator) activateCurrentTab(ctx context.Context) {
	tab := c.ActiveTab()
	if tab == nil {
		return
	}
	c.relayoutTab(tab)
	c.focus.SwitchTab(ctx, tab)
}
