package entity

// Default window size used when nothing better is known.
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// Window owns an ordered sequence of tabs plus the index of the active one.
type Window struct {
	Tabs        []*Tab
	ActiveIndex int

	Width     int
	Height    int
	Maximized bool
}

// NewWindow creates an empty window with the default size.
func NewWindow() *Window {
	return &Window{
		Tabs:   make([]*Tab, 0),
		Width:  DefaultWindowWidth,
		Height: DefaultWindowHeight,
	}
}

// Count returns the number of tabs.
func (w *Window) Count() int {
	return len(w.Tabs)
}

// ContentArea returns the rectangle panes are laid out in.
func (w *Window) ContentArea() Rect {
	return Rect{W: w.Width, H: w.Height}
}

// AddTab appends a tab and makes it active.
func (w *Window) AddTab(tab *Tab) int {
	w.Tabs = append(w.Tabs, tab)
	w.ActiveIndex = len(w.Tabs) - 1
	return w.ActiveIndex
}

// ActiveTab returns the currently shown tab.
func (w *Window) ActiveTab() *Tab {
	if w.ActiveIndex < 0 || w.ActiveIndex >= len(w.Tabs) {
		return nil
	}
	return w.Tabs[w.ActiveIndex]
}

// TabIndex returns the position of the tab with the given ID, or -1.
func (w *Window) TabIndex(id TabID) int {
	for i, tab := range w.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// FindTab returns a tab by ID.
func (w *Window) FindTab(id TabID) *Tab {
	if i := w.TabIndex(id); i >= 0 {
		return w.Tabs[i]
	}
	return nil
}

// RemoveTab removes a tab by ID and keeps the active index on a
// neighbouring tab.
func (w *Window) RemoveTab(id TabID) bool {
	i := w.TabIndex(id)
	if i < 0 {
		return false
	}
	w.Tabs = append(w.Tabs[:i], w.Tabs[i+1:]...)
	switch {
	case len(w.Tabs) == 0:
		w.ActiveIndex = 0
	case w.ActiveIndex > i:
		w.ActiveIndex--
	case w.ActiveIndex >= len(w.Tabs):
		w.ActiveIndex = len(w.Tabs) - 1
	}
	return true
}

// MoveTab moves a tab to a new position, keeping it active if it was.
func (w *Window) MoveTab(id TabID, newPos int) bool {
	if newPos < 0 || newPos >= len(w.Tabs) {
		return false
	}
	oldPos := w.TabIndex(id)
	if oldPos < 0 {
		return false
	}
	active := w.ActiveTab()
	tab := w.Tabs[oldPos]
	w.Tabs = append(w.Tabs[:oldPos], w.Tabs[oldPos+1:]...)
	w.Tabs = append(w.Tabs[:newPos], append([]*Tab{tab}, w.Tabs[newPos:]...)...)
	if active != nil {
		w.ActiveIndex = w.TabIndex(active.ID)
	}
	return true
}

// FindPane searches every tab for a pane by ID.
func (w *Window) FindPane(id PaneID) (*Tab, *Pane) {
	for _, tab := range w.Tabs {
		if p := tab.FindPane(id); p != nil {
			return tab, p
		}
	}
	return nil, nil
}

// FindPaneByContent searches every tab for the pane backed by content.
func (w *Window) FindPaneByContent(content ContentID) (*Tab, *Pane) {
	for _, tab := range w.Tabs {
		if p := FindPaneByContent(tab.Root, content); p != nil {
			return tab, p
		}
	}
	return nil, nil
}

// PaneCount returns the number of panes across all tabs.
func (w *Window) PaneCount() int {
	count := 0
	for _, tab := range w.Tabs {
		count += tab.PaneCount()
	}
	return count
}
