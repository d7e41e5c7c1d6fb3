package entity

import (
	"errors"
	"fmt"
)

// ErrDanglingSplit is returned by Validate for a split missing a child.
var ErrDanglingSplit = errors.New("split has a missing child")

// ErrSharedPane is returned by Validate when a pane appears twice.
var ErrSharedPane = errors.New("pane appears in more than one slot")

// Slot names a position a node can occupy.
type Slot int

const (
	SlotRoot  Slot = iota // the tab's root pointer
	SlotStart             // Split.Start
	SlotEnd               // Split.End
)

func (s Slot) String() string {
	switch s {
	case SlotStart:
		return "start"
	case SlotEnd:
		return "end"
	default:
		return "root"
	}
}

// Child returns the node held in slot.
func (s *Split) Child(slot Slot) PaneNode {
	switch slot {
	case SlotStart:
		return s.Start
	case SlotEnd:
		return s.End
	default:
		return nil
	}
}

// SetChild stores node in slot.
func (s *Split) SetChild(slot Slot, node PaneNode) {
	switch slot {
	case SlotStart:
		s.Start = node
	case SlotEnd:
		s.End = node
	}
}

// SlotOf reports which slot holds child, by identity.
func (s *Split) SlotOf(child PaneNode) (Slot, bool) {
	switch {
	case child == nil:
		return SlotRoot, false
	case s.Start == child:
		return SlotStart, true
	case s.End == child:
		return SlotEnd, true
	default:
		return SlotRoot, false
	}
}

// Sibling returns the other child of s.
func (s *Split) Sibling(child PaneNode) (PaneNode, bool) {
	slot, ok := s.SlotOf(child)
	if !ok {
		return nil, false
	}
	if slot == SlotStart {
		return s.End, true
	}
	return s.Start, true
}

// Walk visits node and its descendants in pre-order, start before end.
// Returning false from fn stops the walk.
func Walk(node PaneNode, fn func(PaneNode) bool) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Pane:
		if n == nil {
			return true
		}
		return fn(n)
	case *Split:
		if n == nil {
			return true
		}
		if !fn(n) {
			return false
		}
		if !Walk(n.Start, fn) {
			return false
		}
		return Walk(n.End, fn)
	default:
		panic(fmt.Sprintf("entity: unknown pane node %T", node))
	}
}

// CollectLeaves returns the panes under root in pre-order.
func CollectLeaves(root PaneNode) []*Pane {
	var leaves []*Pane
	Walk(root, func(node PaneNode) bool {
		if p, ok := node.(*Pane); ok {
			leaves = append(leaves, p)
		}
		return true
	})
	return leaves
}

// FirstLeaf returns the first pane of root in pre-order.
func FirstLeaf(root PaneNode) *Pane {
	var first *Pane
	Walk(root, func(node PaneNode) bool {
		if p, ok := node.(*Pane); ok {
			first = p
			return false
		}
		return true
	})
	return first
}

// FindParent returns the split holding node and the slot it occupies.
// It returns nil when node is the root itself or is not in the tree.
func FindParent(root, node PaneNode) (*Split, Slot) {
	if node == nil || root == node {
		return nil, SlotRoot
	}
	var (
		parent *Split
		slot   Slot
	)
	Walk(root, func(n PaneNode) bool {
		s, ok := n.(*Split)
		if !ok {
			return true
		}
		if found, ok := s.SlotOf(node); ok {
			parent, slot = s, found
			return false
		}
		return true
	})
	if parent == nil {
		return nil, SlotRoot
	}
	return parent, slot
}

// Contains reports whether node is reachable from root.
func Contains(root, node PaneNode) bool {
	if node == nil {
		return false
	}
	found := false
	Walk(root, func(n PaneNode) bool {
		if n == node {
			found = true
			return false
		}
		return true
	})
	return found
}

// FindPane searches root for the pane with the given ID.
func FindPane(root PaneNode, id PaneID) *Pane {
	var found *Pane
	Walk(root, func(node PaneNode) bool {
		if p, ok := node.(*Pane); ok && p.ID == id {
			found = p
			return false
		}
		return true
	})
	return found
}

// FindPaneByContent searches root for the pane backed by content.
func FindPaneByContent(root PaneNode, content ContentID) *Pane {
	var found *Pane
	Walk(root, func(node PaneNode) bool {
		if p, ok := node.(*Pane); ok && p.Content == content {
			found = p
			return false
		}
		return true
	})
	return found
}

// FindSplit searches root for the split with the given ID.
func FindSplit(root PaneNode, id string) *Split {
	var found *Split
	Walk(root, func(node PaneNode) bool {
		if s, ok := node.(*Split); ok && s.ID == id {
			found = s
			return false
		}
		return true
	})
	return found
}

// LeafCount returns the number of panes under root.
func LeafCount(root PaneNode) int {
	return len(CollectLeaves(root))
}

// CountLeavesAlong counts the leaves of node along orientation. A subtree
// rooted at a split of the other orientation counts as one leaf.
func CountLeavesAlong(node PaneNode, orientation Orientation) int {
	if s, ok := node.(*Split); ok && s != nil && s.Orientation == orientation {
		return CountLeavesAlong(s.Start, orientation) + CountLeavesAlong(s.End, orientation)
	}
	return 1
}

// Validate checks the tree invariants: every split has two children and no
// pane is reachable twice.
func Validate(root PaneNode) error {
	seen := make(map[*Pane]bool)
	var err error
	Walk(root, func(node PaneNode) bool {
		switch n := node.(type) {
		case *Split:
			if n.Start == nil || n.End == nil {
				err = fmt.Errorf("%w: %s", ErrDanglingSplit, n.ID)
				return false
			}
		case *Pane:
			if seen[n] {
				err = fmt.Errorf("%w: %s", ErrSharedPane, n.ID)
				return false
			}
			seen[n] = true
		}
		return true
	})
	return err
}

// Shape renders the topology of root as a compact string, e.g.
// "h(terminal,v(explorer,browser))". Positions are left out.
func Shape(root PaneNode) string {
	switch n := root.(type) {
	case *Pane:
		return n.Kind.String()
	case *Split:
		prefix := "h"
		if n.Orientation == Vertical {
			prefix = "v"
		}
		return prefix + "(" + Shape(n.Start) + "," + Shape(n.End) + ")"
	default:
		return "nil"
	}
}
