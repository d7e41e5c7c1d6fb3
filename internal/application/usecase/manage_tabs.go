package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ErrTabNotFound is returned when a tab lookup fails.
var ErrTabNotFound = errors.New("tab not found")

// ErrWindowRequired is returned when no window is given.
var ErrWindowRequired = errors.New("window is required")

// ManageTabsUseCase handles tab lifecycle operations.
type ManageTabsUseCase struct {
	content     port.ContentProvider
	idGenerator IDGenerator
}

// NewManageTabsUseCase creates a new tab management use case.
func NewManageTabsUseCase(content port.ContentProvider, idGenerator IDGenerator) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		content:     content,
		idGenerator: idGenerator,
	}
}

// CreateTabInput contains parameters for creating a new tab.
type CreateTabInput struct {
	Window *entity.Window
	Name   string // Optional custom name
	Cwd    string // Initial directory of the terminal (default: provider's)
}

// Create appends a tab holding a single terminal and makes it active.
func (uc *ManageTabsUseCase) Create(ctx context.Context, input CreateTabInput) (*entity.Tab, error) {
	log := logging.FromContext(ctx)
	if input.Window == nil {
		return nil, ErrWindowRequired
	}

	contentID, err := uc.content.CreatePane(ctx, entity.KindTerminal, input.Cwd)
	if err != nil {
		return nil, fmt.Errorf("create terminal: %w", err)
	}

	pane := entity.NewPane(entity.PaneID(uc.idGenerator()), entity.KindTerminal, contentID)
	tab := entity.NewTab(entity.TabID(uc.idGenerator()), pane)
	tab.Name = input.Name
	input.Window.AddTab(tab)

	log.Info().
		Str("tab_id", string(tab.ID)).
		Str("pane_id", string(pane.ID)).
		Int("position", input.Window.ActiveIndex).
		Msg("tab created")

	return tab, nil
}

// Close destroys every pane of a tab and removes it from the window.
// Returns true if the window has no tabs left (caller should tear the
// window down).
func (uc *ManageTabsUseCase) Close(ctx context.Context, w *entity.Window, tabID entity.TabID) (windowEmpty bool, err error) {
	ctx = logging.WithTabID(ctx, tabID)
	log := logging.FromContext(ctx)
	if w == nil {
		return false, ErrWindowRequired
	}

	tab := w.FindTab(tabID)
	if tab == nil {
		log.Debug().Msg("tab not found")
		return w.Count() == 0, nil
	}

	for _, p := range tab.Panes() {
		if err := uc.content.DestroyPane(ctx, p.Content); err != nil {
			log.Warn().Err(err).Str("pane_id", string(p.ID)).Msg("failed to destroy pane content")
		}
	}
	tab.Root = nil

	return uc.Remove(ctx, w, tabID), nil
}

// Remove drops an already emptied tab from the window.
// Returns true if the window has no tabs left.
func (uc *ManageTabsUseCase) Remove(ctx context.Context, w *entity.Window, tabID entity.TabID) bool {
	log := logging.FromContext(ctx)
	if !w.RemoveTab(tabID) {
		return w.Count() == 0
	}
	log.Info().
		Str("tab_id", string(tabID)).
		Int("remaining", w.Count()).
		Msg("tab closed")
	return w.Count() == 0
}

// Switch changes the active tab.
func (uc *ManageTabsUseCase) Switch(ctx context.Context, w *entity.Window, index int) error {
	if w == nil {
		return ErrWindowRequired
	}
	if index < 0 || index >= w.Count() {
		return fmt.Errorf("%w: index %d", ErrTabNotFound, index)
	}
	old := w.ActiveIndex
	w.ActiveIndex = index
	logging.FromContext(ctx).Debug().
		Int("from", old).
		Int("to", index).
		Msg("tab switched")
	return nil
}

// Next activates the tab after the current one, wrapping around.
func (uc *ManageTabsUseCase) Next(ctx context.Context, w *entity.Window) error {
	if w == nil || w.Count() == 0 {
		return ErrWindowRequired
	}
	return uc.Switch(ctx, w, (w.ActiveIndex+1)%w.Count())
}

// Previous activates the tab before the current one, wrapping around.
func (uc *ManageTabsUseCase) Previous(ctx context.Context, w *entity.Window) error {
	if w == nil || w.Count() == 0 {
		return ErrWindowRequired
	}
	return uc.Switch(ctx, w, (w.ActiveIndex-1+w.Count())%w.Count())
}

// Move reorders a tab.
func (uc *ManageTabsUseCase) Move(ctx context.Context, w *entity.Window, tabID entity.TabID, newPos int) error {
	if w == nil {
		return ErrWindowRequired
	}
	if !w.MoveTab(tabID, newPos) {
		return fmt.Errorf("%w: cannot move %s to %d", ErrTabNotFound, tabID, newPos)
	}
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(tabID)).
		Int("position", newPos).
		Msg("tab moved")
	return nil
}

// Rename sets a custom tab name. An empty name returns the tab to
// following its active pane's title.
func (uc *ManageTabsUseCase) Rename(ctx context.Context, w *entity.Window, tabID entity.TabID, name string) error {
	if w == nil {
		return ErrWindowRequired
	}
	tab := w.FindTab(tabID)
	if tab == nil {
		return fmt.Errorf("%w: %s", ErrTabNotFound, tabID)
	}
	tab.Name = name
	logging.FromContext(ctx).Debug().
		Str("tab_id", string(tabID)).
		Str("name", name).
		Msg("tab renamed")
	return nil
}
