package coordinator

import (
	"context"

	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/logging"
)

// NotifyExit reports that content ended on its own, e.g. the shell of a
// terminal pane exited. Safe to call from any goroutine: the close runs on
// the UI loop, and only if the pane still exists by then.
func (c *WorkspaceCoordinator) NotifyExit(id entity.ContentID) {
	posted := c.post(func() {
		if c.closed || c.window == nil {
			return
		}
		ctx := c.loopContext()
		log := logging.FromContext(ctx)

		tab, pane := c.window.FindPaneByContent(id)
		if pane == nil {
			log.Debug().Str("content_id", string(id)).Msg("exit for unknown content ignored")
			return
		}
		if err := c.closePane(ctx, tab, pane, true); err != nil {
			log.Warn().Err(err).Str("pane_id", string(pane.ID)).Msg("failed to close exited pane")
		}
	})
	if !posted {
		logging.FromContext(c.loopContext()).Debug().Str("content_id", string(id)).Msg("exit dropped: loop closed")
	}
}

// NotifyTitle reports a new title for content. Bursts for the same content
// collapse into one update carrying the latest title.
func (c *WorkspaceCoordinator) NotifyTitle(id entity.ContentID, title string) {
	c.coalescer.Post("title:"+string(id), func() {
		if c.closed || c.window == nil {
			return
		}
		tab, pane := c.window.FindPaneByContent(id)
		if pane == nil {
			return
		}
		c.panesUC.SetTitle(c.loopContext(), pane, title)
		c.focus.TitleChanged(tab, pane)
	})
}

// loopContext is the context Start ran with; callbacks arriving from
// providers carry none of their own.
func (c *WorkspaceCoordinator) loopContext() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}
