package entity

import "time"

// TabID uniquely identifies a tab.
type TabID string

// Tab is one independent pane tree. Tabs are the top-level container in
// the window's tab bar.
type Tab struct {
	ID   TabID
	Name string // Custom name set by the user; empty follows the active pane
	Root PaneNode

	CreatedAt time.Time
}

// NewTab creates a tab whose tree is a single pane.
func NewTab(id TabID, initialPane *Pane) *Tab {
	return &Tab{
		ID:        id,
		Root:      initialPane,
		CreatedAt: time.Now(),
	}
}

// Panes returns the tab's panes in pre-order.
func (t *Tab) Panes() []*Pane {
	if t == nil {
		return nil
	}
	return CollectLeaves(t.Root)
}

// PaneCount returns the number of panes in this tab.
func (t *Tab) PaneCount() int {
	return len(t.Panes())
}

// FindPane searches the tab for a pane by ID.
func (t *Tab) FindPane(id PaneID) *Pane {
	if t == nil {
		return nil
	}
	return FindPane(t.Root, id)
}

// ActivePane returns the pane flagged active, if any.
func (t *Tab) ActivePane() *Pane {
	for _, p := range t.Panes() {
		if p.Active {
			return p
		}
	}
	return nil
}

// Title returns the display title for the tab.
// Uses the custom name, then the active pane's title.
func (t *Tab) Title() string {
	if t.Name != "" {
		return t.Name
	}
	if active := t.ActivePane(); active != nil {
		return active.DisplayTitle()
	}
	if first := FirstLeaf(t.Root); first != nil {
		return first.DisplayTitle()
	}
	return "Terminal"
}
