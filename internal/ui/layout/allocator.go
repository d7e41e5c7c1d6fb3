// Package layout assigns screen rectangles to pane trees. It is the layout
// pass the geometry-dependent operations rely on: until a tree has been
// laid out, Bounds reports nothing for its nodes.
package layout

import (
	"sync"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/domain/entity"
)

// Allocator lays out pane trees and remembers the resulting bounds per tab.
type Allocator struct {
	mu    sync.RWMutex
	byTab map[entity.TabID]map[entity.PaneNode]entity.Rect
}

// NewAllocator creates an allocator with no layout yet.
func NewAllocator() *Allocator {
	return &Allocator{
		byTab: make(map[entity.TabID]map[entity.PaneNode]entity.Rect),
	}
}

// Layout assigns bounds to every node of root inside area and writes the
// effective divider positions back into the splits, so restored or unset
// positions are validated against the live size.
func (a *Allocator) Layout(tabID entity.TabID, root entity.PaneNode, area entity.Rect) {
	rects := make(map[entity.PaneNode]entity.Rect)
	if root != nil && !area.Empty() {
		allocate(root, area, rects)
	}

	a.mu.Lock()
	a.byTab[tabID] = rects
	a.mu.Unlock()
}

func allocate(node entity.PaneNode, area entity.Rect, rects map[entity.PaneNode]entity.Rect) {
	rects[node] = area
	s, ok := node.(*entity.Split)
	if !ok {
		return
	}
	s.Position = s.EffectivePosition(area.Extent(s.Orientation))
	start, end := s.ChildRects(area)
	allocate(s.Start, start, rects)
	allocate(s.End, end, rects)
}

// Forget drops the layout of a destroyed tab.
func (a *Allocator) Forget(tabID entity.TabID) {
	a.mu.Lock()
	delete(a.byTab, tabID)
	a.mu.Unlock()
}

// Bounds returns the rectangle assigned to node by the last layout pass of
// its tab.
func (a *Allocator) Bounds(node entity.PaneNode) (entity.Rect, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, rects := range a.byTab {
		if r, ok := rects[node]; ok {
			return r, true
		}
	}
	return entity.Rect{}, false
}

// PaneRects returns the bounds of every laid-out pane of a tab.
func (a *Allocator) PaneRects(tabID entity.TabID) map[entity.PaneID]entity.Rect {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make(map[entity.PaneID]entity.Rect)
	for node, r := range a.byTab[tabID] {
		if p, ok := node.(*entity.Pane); ok {
			out[p.ID] = r
		}
	}
	return out
}

var _ port.Geometry = (*Allocator)(nil)
