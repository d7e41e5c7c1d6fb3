package coordinator

import (
	"context"
	"errors"

	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/logging"
)

// Navigate moves focus to the nearest pane in direction. It reports
// whether focus moved.
func (c *WorkspaceCoordinator) Navigate(ctx context.Context, direction usecase.Direction) bool {
	if c.closed {
		return false
	}
	tab := c.ActiveTab()
	from := c.ActivePane()
	if tab == nil || from == nil {
		return false
	}

	target := c.navigateUC.Execute(ctx, usecase.NavigateFocusInput{
		Tab:       tab,
		From:      from,
		Direction: direction,
	})
	if target == nil {
		return false
	}
	c.focus.Enter(ctx, tab, target)
	return true
}

// FocusPane gives focus to a pane of the active tab, as a click does.
func (c *WorkspaceCoordinator) FocusPane(ctx context.Context, id entity.PaneID) bool {
	if c.closed {
		return false
	}
	tab := c.ActiveTab()
	if tab == nil {
		return false
	}
	pane := tab.FindPane(id)
	if pane == nil {
		return false
	}
	c.focus.Enter(ctx, tab, pane)
	return true
}

// Drop completes a drag of source's title bar onto destination by swapping
// the two panes. Stale or identical ids are ignored; it reports whether
// the panes moved.
func (c *WorkspaceCoordinator) Drop(ctx context.Context, source, destination entity.PaneID) bool {
	if c.closed {
		return false
	}
	log := logging.FromContext(ctx)

	err := c.swapUC.Execute(ctx, usecase.SwapPanesInput{
		Window:      c.window,
		Source:      source,
		Destination: destination,
	})
	switch {
	case errors.Is(err, usecase.ErrSamePane),
		errors.Is(err, usecase.ErrPaneNotLive),
		errors.Is(err, usecase.ErrPaneNotFound):
		log.Debug().Err(err).Msg("drop ignored")
		return false
	case err != nil:
		log.Warn().Err(err).Msg("drop failed")
		return false
	}

	// After a swap across tabs each tab may hold a pane highlighted for
	// the other one.
	srcTab, _ := c.window.FindPane(source)
	dstTab, _ := c.window.FindPane(destination)
	for _, tab := range []*entity.Tab{srcTab, dstTab} {
		c.focus.Sync(tab)
		if tab == c.ActiveTab() && c.focus.ActivePane(tab) == nil {
			c.focus.SwitchTab(ctx, tab)
		}
	}

	c.relayout()
	c.stateChanged()
	return true
}

// SetNavEpsilon applies a new navigation epsilon to later Navigate calls.
func (c *WorkspaceCoordinator) SetNavEpsilon(epsilon float64) {
	c.navigateUC.SetEpsilon(epsilon)
}
