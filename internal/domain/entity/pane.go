// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"time"
)

// PaneID uniquely identifies a pane within the window.
type PaneID string

// ContentID is the opaque handle a content provider hands out for the
// terminal, explorer or browser backing a pane.
type ContentID string

// PaneKind is the kind of content hosted by a pane.
type PaneKind int

const (
	KindTerminal PaneKind = iota
	KindExplorer
	KindBrowser
)

func (k PaneKind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindExplorer:
		return "explorer"
	case KindBrowser:
		return "browser"
	default:
		return fmt.Sprintf("PaneKind(%d)", int(k))
	}
}

// ParsePaneKind maps a serialized kind name to a PaneKind.
func ParsePaneKind(s string) (PaneKind, bool) {
	switch s {
	case "terminal":
		return KindTerminal, true
	case "explorer":
		return KindExplorer, true
	case "browser":
		return KindBrowser, true
	default:
		return KindTerminal, false
	}
}

// Orientation is the axis a split divides its area along.
type Orientation int

const (
	Horizontal Orientation = iota // start | end, divided left/right
	Vertical                      // start above end
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Perpendicular returns the other axis.
func (o Orientation) Perpendicular() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// ParseOrientation maps a serialized orientation name to an Orientation.
// Anything other than "vertical" reads as horizontal.
func ParseOrientation(s string) Orientation {
	if s == "vertical" {
		return Vertical
	}
	return Horizontal
}

// PaneNode is a node of a tab's pane tree. The set of implementations is
// closed: a node is either a *Split or a *Pane.
type PaneNode interface {
	paneNode()
}

// Pane is a leaf tile hosting one piece of content.
type Pane struct {
	ID      PaneID
	Kind    PaneKind
	Content ContentID
	Title   string

	// Active is read by the rendering layer to highlight the focused pane.
	Active bool

	CreatedAt time.Time
}

// NewPane creates a pane bound to provider content.
func NewPane(id PaneID, kind PaneKind, content ContentID) *Pane {
	return &Pane{
		ID:        id,
		Kind:      kind,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// DisplayTitle returns the pane title, falling back to the kind name.
func (p *Pane) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	switch p.Kind {
	case KindExplorer:
		return "Files"
	case KindBrowser:
		return "Browser"
	default:
		return "Terminal"
	}
}

// Split divides its area between exactly two children.
// Position is the size in pixels of Start along the split axis; zero means
// the split has not been laid out yet.
type Split struct {
	ID          string
	Orientation Orientation
	Position    int
	Start       PaneNode
	End         PaneNode
}

// NewSplit creates a split owning start and end.
func NewSplit(id string, orientation Orientation, position int, start, end PaneNode) *Split {
	return &Split{
		ID:          id,
		Orientation: orientation,
		Position:    position,
		Start:       start,
		End:         end,
	}
}

func (*Pane) paneNode()  {}
func (*Split) paneNode() {}
