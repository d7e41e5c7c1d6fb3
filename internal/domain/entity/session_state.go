package entity

import (
	"encoding/json"
	"fmt"
)

// Node type names used in the session document.
const (
	NodeTypeSplit    = "split"
	NodeTypeTerminal = "terminal"
	NodeTypeExplorer = "explorer"
	NodeTypeBrowser  = "browser"
)

// DefaultBrowserURL is written for browser panes that report no URL.
const DefaultBrowserURL = "https://www.google.com"

// SessionDocument is the persisted form of a window: its geometry, the
// active tab and one pane tree per tab.
type SessionDocument struct {
	Maximized bool            `json:"maximized"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	ActiveTab int             `json:"active_tab"`
	Tabs      []*NodeSnapshot `json:"tabs"`
}

// NodeSnapshot is one node of a persisted pane tree. Which fields are
// meaningful depends on Type.
type NodeSnapshot struct {
	Type string `json:"type"`

	// split
	Orientation string        `json:"orientation,omitempty"`
	Position    int           `json:"position,omitempty"`
	Start       *NodeSnapshot `json:"start,omitempty"`
	End         *NodeSnapshot `json:"end,omitempty"`

	// leaves
	Cwd  string `json:"cwd,omitempty"`  // terminal
	Path string `json:"path,omitempty"` // explorer
	URL  string `json:"url,omitempty"`  // browser
}

type splitJSON struct {
	Type        string        `json:"type"`
	Orientation string        `json:"orientation"`
	Position    int           `json:"position"`
	Start       *NodeSnapshot `json:"start"`
	End         *NodeSnapshot `json:"end"`
}

type terminalJSON struct {
	Type string `json:"type"`
	Cwd  string `json:"cwd"`
}

type explorerJSON struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

type browserJSON struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// MarshalJSON writes only the members that belong to the node's type, with
// split children always present (null when missing).
func (n *NodeSnapshot) MarshalJSON() ([]byte, error) {
	switch n.Type {
	case NodeTypeSplit:
		return json.Marshal(splitJSON{
			Type:        n.Type,
			Orientation: n.Orientation,
			Position:    n.Position,
			Start:       n.Start,
			End:         n.End,
		})
	case NodeTypeExplorer:
		return json.Marshal(explorerJSON{Type: n.Type, Path: n.Path})
	case NodeTypeBrowser:
		return json.Marshal(browserJSON{Type: n.Type, URL: n.URL})
	case NodeTypeTerminal:
		return json.Marshal(terminalJSON{Type: n.Type, Cwd: n.Cwd})
	default:
		return nil, fmt.Errorf("unknown node type %q", n.Type)
	}
}

// Token returns the identity token stored for a leaf node.
func (n *NodeSnapshot) Token() string {
	switch n.Type {
	case NodeTypeExplorer:
		return n.Path
	case NodeTypeBrowser:
		return n.URL
	default:
		return n.Cwd
	}
}

// Kind returns the pane kind of a leaf node. Unknown types read as
// terminals.
func (n *NodeSnapshot) Kind() PaneKind {
	kind, _ := ParsePaneKind(n.Type)
	return kind
}

// IsSplit reports whether n is a split node.
func (n *NodeSnapshot) IsSplit() bool {
	return n.Type == NodeTypeSplit
}

// LeafSnapshot builds the node for a pane of kind with the given token.
func LeafSnapshot(kind PaneKind, token string) *NodeSnapshot {
	switch kind {
	case KindExplorer:
		return &NodeSnapshot{Type: NodeTypeExplorer, Path: token}
	case KindBrowser:
		if token == "" {
			token = DefaultBrowserURL
		}
		return &NodeSnapshot{Type: NodeTypeBrowser, URL: token}
	default:
		return &NodeSnapshot{Type: NodeTypeTerminal, Cwd: token}
	}
}

// TokenLookup resolves the identity token of a pane at snapshot time.
type TokenLookup func(p *Pane) string

// SnapshotFromWindow creates a SessionDocument from a live window.
func SnapshotFromWindow(w *Window, tokens TokenLookup) *SessionDocument {
	doc := &SessionDocument{
		Tabs: make([]*NodeSnapshot, 0),
	}
	if w == nil {
		return doc
	}

	doc.Maximized = w.Maximized
	doc.Width = w.Width
	doc.Height = w.Height
	if doc.Width <= 0 {
		doc.Width = DefaultWindowWidth
	}
	if doc.Height <= 0 {
		doc.Height = DefaultWindowHeight
	}

	// ActiveTab indexes the written tabs. An empty active tab falls back to
	// the nearest written tab before it.
	for i, tab := range w.Tabs {
		if tab.Root == nil {
			continue
		}
		if i <= w.ActiveIndex {
			doc.ActiveTab = len(doc.Tabs)
		}
		doc.Tabs = append(doc.Tabs, SnapshotNode(tab.Root, tokens))
	}
	return doc
}

// SnapshotNode converts a pane tree into its persisted form.
func SnapshotNode(node PaneNode, tokens TokenLookup) *NodeSnapshot {
	switch n := node.(type) {
	case *Split:
		return &NodeSnapshot{
			Type:        NodeTypeSplit,
			Orientation: n.Orientation.String(),
			Position:    n.Position,
			Start:       SnapshotNode(n.Start, tokens),
			End:         SnapshotNode(n.End, tokens),
		}
	case *Pane:
		token := ""
		if tokens != nil {
			token = tokens(n)
		}
		return LeafSnapshot(n.Kind, token)
	default:
		return nil
	}
}

// CountPanes returns the number of leaves in the document.
func (d *SessionDocument) CountPanes() int {
	count := 0
	for _, tab := range d.Tabs {
		count += countSnapshotLeaves(tab)
	}
	return count
}

func countSnapshotLeaves(node *NodeSnapshot) int {
	if node == nil {
		return 0
	}
	if node.IsSplit() {
		return countSnapshotLeaves(node.Start) + countSnapshotLeaves(node.End)
	}
	return 1
}
