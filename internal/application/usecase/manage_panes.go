package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/logging"
)

var (
	// ErrPaneNotFound is returned when an operation targets a pane that is
	// not part of the tree it was issued against.
	ErrPaneNotFound = errors.New("pane not found")
	// ErrSplitNotFound is returned when a divider no longer exists.
	ErrSplitNotFound = errors.New("split not found")
	// ErrTabRequired is returned when no tab is given.
	ErrTabRequired = errors.New("tab is required")
)

// ManagePanesUseCase handles pane tree mutations: split, close, equalize
// and divider moves.
type ManagePanesUseCase struct {
	content     port.ContentProvider
	geometry    port.Geometry
	idGenerator IDGenerator
}

// NewManagePanesUseCase creates a new pane management use case.
func NewManagePanesUseCase(
	content port.ContentProvider,
	geometry port.Geometry,
	idGenerator IDGenerator,
) *ManagePanesUseCase {
	return &ManagePanesUseCase{
		content:     content,
		geometry:    geometry,
		idGenerator: idGenerator,
	}
}

// SplitPaneInput contains parameters for splitting a pane.
type SplitPaneInput struct {
	Tab         *entity.Tab
	Target      *entity.Pane
	Orientation entity.Orientation
	Kind        entity.PaneKind // Kind of the new pane (default: terminal)
	InitParam   string          // Initial directory or URL for the new pane
}

// SplitPaneOutput contains the result of a split operation.
type SplitPaneOutput struct {
	NewPane *entity.Pane
	Split   *entity.Split
}

// Split places target and a newly created pane side by side in a new split
// occupying target's former slot. The caller is expected to focus NewPane.
func (uc *ManagePanesUseCase) Split(ctx context.Context, input SplitPaneInput) (*SplitPaneOutput, error) {
	log := logging.FromContext(ctx)
	if input.Tab == nil {
		return nil, ErrTabRequired
	}
	if input.Target == nil || !entity.Contains(input.Tab.Root, input.Target) {
		return nil, ErrPaneNotFound
	}

	log.Debug().
		Str("target_id", string(input.Target.ID)).
		Str("orientation", input.Orientation.String()).
		Str("kind", input.Kind.String()).
		Msg("splitting pane")

	// Measure before touching the tree: once the target is reparented the
	// last layout no longer describes it.
	position := 0
	if uc.geometry != nil {
		if r, ok := uc.geometry.Bounds(input.Target); ok {
			position = r.Extent(input.Orientation) / 2
		}
	}

	contentID, err := uc.content.CreatePane(ctx, input.Kind, input.InitParam)
	if err != nil {
		return nil, fmt.Errorf("create %s content: %w", input.Kind, err)
	}
	newPane := entity.NewPane(entity.PaneID(uc.idGenerator()), input.Kind, contentID)

	parent, slot := entity.FindParent(input.Tab.Root, input.Target)
	split := entity.NewSplit(uc.idGenerator(), input.Orientation, position, input.Target, newPane)
	if parent == nil {
		input.Tab.Root = split
	} else {
		parent.SetChild(slot, split)
	}

	log.Info().
		Str("new_pane_id", string(newPane.ID)).
		Str("split_id", split.ID).
		Int("position", position).
		Msg("pane split completed")

	return &SplitPaneOutput{NewPane: newPane, Split: split}, nil
}

// ClosePaneInput contains parameters for closing a pane.
type ClosePaneInput struct {
	Tab  *entity.Tab
	Pane *entity.Pane
	// ContentExited is set when the close was triggered by the content
	// ending on its own; the provider is then not asked to destroy it.
	ContentExited bool
}

// ClosePaneOutput contains the result of a close operation.
type ClosePaneOutput struct {
	// TabEmptied is true when the pane was the tab root: the tab has no
	// panes left and must be removed by the caller.
	TabEmptied bool
	// Promoted is the sibling subtree that took the parent's slot.
	Promoted entity.PaneNode
	// FocusTarget is the first leaf of Promoted.
	FocusTarget *entity.Pane
}

// Close removes a pane and collapses its parent split into the sibling.
func (uc *ManagePanesUseCase) Close(ctx context.Context, input ClosePaneInput) (*ClosePaneOutput, error) {
	log := logging.FromContext(ctx)
	if input.Tab == nil {
		return nil, ErrTabRequired
	}
	if input.Pane == nil || !entity.Contains(input.Tab.Root, input.Pane) {
		return nil, ErrPaneNotFound
	}

	log.Debug().Str("pane_id", string(input.Pane.ID)).Msg("closing pane")

	if !input.ContentExited {
		if err := uc.content.DestroyPane(ctx, input.Pane.Content); err != nil {
			log.Warn().Err(err).Str("pane_id", string(input.Pane.ID)).Msg("failed to destroy pane content")
		}
	}
	input.Pane.Active = false

	parent, _ := entity.FindParent(input.Tab.Root, input.Pane)
	if parent == nil {
		log.Info().Msg("closing last pane in tab")
		input.Tab.Root = nil
		return &ClosePaneOutput{TabEmptied: true}, nil
	}

	sibling, _ := parent.Sibling(input.Pane)
	grandparent, slot := entity.FindParent(input.Tab.Root, parent)
	if grandparent == nil {
		input.Tab.Root = sibling
	} else {
		grandparent.SetChild(slot, sibling)
	}

	focus := entity.FirstLeaf(sibling)

	log.Info().
		Str("closed_pane_id", string(input.Pane.ID)).
		Str("collapsed_split_id", parent.ID).
		Msg("pane closed, sibling promoted")

	return &ClosePaneOutput{Promoted: sibling, FocusTarget: focus}, nil
}

// Equalize redistributes every split of the given orientation in the tab
// so that leaves along that axis get equal space. A subtree split the other
// way counts as a single leaf.
func (uc *ManagePanesUseCase) Equalize(ctx context.Context, tab *entity.Tab, orientation entity.Orientation) error {
	log := logging.FromContext(ctx)
	if tab == nil {
		return ErrTabRequired
	}
	if tab.Root == nil || uc.geometry == nil {
		return nil
	}

	area, ok := uc.geometry.Bounds(tab.Root)
	if !ok || area.Empty() {
		log.Debug().Msg("equalize skipped: tab not laid out")
		return nil
	}

	changed := equalize(tab.Root, area, orientation)

	log.Debug().
		Str("orientation", orientation.String()).
		Int("splits_changed", changed).
		Msg("panes equalized")
	return nil
}

// equalize walks top-down so that each nested split is sized against the
// area its parent will give it after the parent's own position changed.
func equalize(node entity.PaneNode, area entity.Rect, orientation entity.Orientation) int {
	s, ok := node.(*entity.Split)
	if !ok {
		return 0
	}

	changed := 0
	if s.Orientation == orientation {
		nStart := entity.CountLeavesAlong(s.Start, orientation)
		nTotal := nStart + entity.CountLeavesAlong(s.End, orientation)
		extent := area.Extent(orientation)
		if nTotal > 0 && extent > 0 {
			s.Position = extent * nStart / nTotal
			changed++
		}
	}

	start, end := s.ChildRects(area)
	changed += equalize(s.Start, start, orientation)
	changed += equalize(s.End, end, orientation)
	return changed
}

// EqualizeFromDivider equalizes the tab along the orientation of the split
// whose divider received the gesture.
func (uc *ManagePanesUseCase) EqualizeFromDivider(ctx context.Context, tab *entity.Tab, splitID string) error {
	if tab == nil {
		return ErrTabRequired
	}
	split := entity.FindSplit(tab.Root, splitID)
	if split == nil {
		return fmt.Errorf("%w: %s", ErrSplitNotFound, splitID)
	}
	return uc.Equalize(ctx, tab, split.Orientation)
}

// SetPosition moves a divider, as when the user drags it.
func (uc *ManagePanesUseCase) SetPosition(ctx context.Context, tab *entity.Tab, splitID string, position int) error {
	log := logging.FromContext(ctx)
	if tab == nil {
		return ErrTabRequired
	}
	split := entity.FindSplit(tab.Root, splitID)
	if split == nil {
		return fmt.Errorf("%w: %s", ErrSplitNotFound, splitID)
	}

	if uc.geometry != nil {
		if r, ok := uc.geometry.Bounds(split); ok {
			position = clampInt(position, 0, r.Extent(split.Orientation))
		}
	}

	old := split.Position
	split.Position = position
	log.Debug().
		Str("split_id", splitID).
		Int("old_position", old).
		Int("new_position", position).
		Msg("split position set")
	return nil
}

// SetTitle records the title reported by a pane's content.
func (uc *ManagePanesUseCase) SetTitle(ctx context.Context, pane *entity.Pane, title string) {
	if pane == nil || title == "" {
		return
	}
	pane.Title = title
	logging.FromContext(ctx).Trace().
		Str("pane_id", string(pane.ID)).
		Str("title", title).
		Msg("pane title updated")
}

func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
