package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/logging"
)

var (
	// ErrSamePane is returned when a pane is dropped onto itself.
	ErrSamePane = errors.New("source and destination are the same pane")
	// ErrPaneNotLive is returned when the dragged pane was destroyed before
	// the drop.
	ErrPaneNotLive = errors.New("pane is no longer live")
)

// SwapPanesUseCase exchanges the tree positions of two panes, as requested
// by dragging one pane's title bar onto another's.
type SwapPanesUseCase struct{}

// NewSwapPanesUseCase creates a new swap use case.
func NewSwapPanesUseCase() *SwapPanesUseCase {
	return &SwapPanesUseCase{}
}

// SwapPanesInput identifies the dragged pane and the pane it was dropped on.
type SwapPanesInput struct {
	Window      *entity.Window
	Source      entity.PaneID
	Destination entity.PaneID
}

type paneLocation struct {
	tab    *entity.Tab
	parent *entity.Split
	slot   entity.Slot
	pane   *entity.Pane
}

func locate(w *entity.Window, id entity.PaneID) (paneLocation, bool) {
	tab, pane := w.FindPane(id)
	if pane == nil {
		return paneLocation{}, false
	}
	parent, slot := entity.FindParent(tab.Root, pane)
	return paneLocation{tab: tab, parent: parent, slot: slot, pane: pane}, true
}

func (l paneLocation) attach(node entity.PaneNode) {
	if l.parent == nil {
		l.tab.Root = node
		return
	}
	l.parent.SetChild(l.slot, node)
}

// Execute swaps the two panes. Split structure and positions are left
// untouched, and so is focus.
func (uc *SwapPanesUseCase) Execute(ctx context.Context, input SwapPanesInput) error {
	log := logging.FromContext(ctx)
	if input.Window == nil {
		return fmt.Errorf("window is required")
	}
	if input.Source == input.Destination {
		return ErrSamePane
	}

	src, ok := locate(input.Window, input.Source)
	if !ok {
		log.Debug().Str("source", string(input.Source)).Msg("drop rejected: source pane is gone")
		return fmt.Errorf("%w: %s", ErrPaneNotLive, input.Source)
	}
	dst, ok := locate(input.Window, input.Destination)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPaneNotFound, input.Destination)
	}

	// Both slots are recorded before either is written, so siblings of the
	// same split swap correctly.
	src.attach(dst.pane)
	dst.attach(src.pane)

	log.Info().
		Str("source", string(input.Source)).
		Str("destination", string(input.Destination)).
		Msg("panes swapped")
	return nil
}
