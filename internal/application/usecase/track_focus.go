package usecase

import (
	"context"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/logging"
)

// FocusTracker remembers the active pane of every tab and keeps the panes'
// Active flags and the window title in step with it.
//
// State is per tab: switching tabs restores whichever pane was last active
// in the tab being shown.
type FocusTracker struct {
	content port.ContentProvider
	titles  port.TitleSink
	active  map[entity.TabID]entity.PaneID
}

// NewFocusTracker creates a tracker. titles may be nil.
func NewFocusTracker(content port.ContentProvider, titles port.TitleSink) *FocusTracker {
	return &FocusTracker{
		content: content,
		titles:  titles,
		active:  make(map[entity.TabID]entity.PaneID),
	}
}

// ActivePane returns the tab's active pane, or nil if none is recorded or
// the recorded pane has left the tab.
func (f *FocusTracker) ActivePane(tab *entity.Tab) *entity.Pane {
	if tab == nil {
		return nil
	}
	id, ok := f.active[tab.ID]
	if !ok {
		return nil
	}
	return tab.FindPane(id)
}

// Enter makes pane the active pane of tab: the previous pane loses its
// highlight, the new one gains it, the content receives focus and the
// window title follows the pane.
func (f *FocusTracker) Enter(ctx context.Context, tab *entity.Tab, pane *entity.Pane) {
	log := logging.FromContext(ctx)
	if tab == nil || pane == nil || !entity.Contains(tab.Root, pane) {
		return
	}

	prev := f.ActivePane(tab)
	f.active[tab.ID] = pane.ID
	f.refresh(tab, pane)

	if f.content != nil {
		if err := f.content.Focus(ctx, pane.Content); err != nil {
			log.Warn().Err(err).Str("pane_id", string(pane.ID)).Msg("failed to focus pane content")
		}
	}
	f.publishTitle(pane)

	from := ""
	if prev != nil {
		from = string(prev.ID)
	}
	log.Debug().
		Str("tab_id", string(tab.ID)).
		Str("from", from).
		Str("to", string(pane.ID)).
		Msg("focus changed")
}

// Remember records pane as the active pane of a tab that is not shown and
// refreshes its highlight. Content focus and the window title are left
// alone.
func (f *FocusTracker) Remember(tab *entity.Tab, pane *entity.Pane) {
	if tab == nil || pane == nil || !entity.Contains(tab.Root, pane) {
		return
	}
	f.active[tab.ID] = pane.ID
	f.refresh(tab, pane)
}

// Leave clears the tab's active pane, as while the active pane is being
// closed.
func (f *FocusTracker) Leave(tab *entity.Tab) {
	if tab == nil {
		return
	}
	delete(f.active, tab.ID)
	f.refresh(tab, nil)
}

// SwitchTab focuses the pane last active in tab, or its first pane.
func (f *FocusTracker) SwitchTab(ctx context.Context, tab *entity.Tab) *entity.Pane {
	if tab == nil {
		return nil
	}
	target := f.ActivePane(tab)
	if target == nil {
		target = entity.FirstLeaf(tab.Root)
	}
	f.Enter(ctx, tab, target)
	return target
}

// TitleChanged updates the window title when pane is the active one.
func (f *FocusTracker) TitleChanged(tab *entity.Tab, pane *entity.Pane) {
	if pane != nil && f.ActivePane(tab) == pane {
		f.publishTitle(pane)
	}
}

// Sync reapplies tab's highlight after panes moved in or out of it
// without changing keyboard focus.
func (f *FocusTracker) Sync(tab *entity.Tab) {
	if tab == nil {
		return
	}
	f.refresh(tab, f.ActivePane(tab))
}

// Forget drops the state of a destroyed tab.
func (f *FocusTracker) Forget(tabID entity.TabID) {
	delete(f.active, tabID)
}

func (f *FocusTracker) refresh(tab *entity.Tab, active *entity.Pane) {
	for _, p := range tab.Panes() {
		p.Active = p == active
	}
}

func (f *FocusTracker) publishTitle(pane *entity.Pane) {
	if f.titles == nil {
		return
	}
	if pane.Title != "" {
		f.titles.SetWindowTitle(pane.Title)
	}
}
