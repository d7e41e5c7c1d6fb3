package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/domain/repository"
	"github.com/koder-native/kterm/internal/logging"
)

// RestoreSessionUseCase rebuilds a window from the stored session document.
// Restore never fails the application: anything it cannot use is replaced
// by a fresh single-terminal tab.
type RestoreSessionUseCase struct {
	stateRepo   repository.SessionStateRepository
	content     port.ContentProvider
	fs          port.FileSystem
	idGenerator IDGenerator
}

// NewRestoreSessionUseCase creates a new RestoreSessionUseCase.
func NewRestoreSessionUseCase(
	stateRepo repository.SessionStateRepository,
	content port.ContentProvider,
	fs port.FileSystem,
	idGenerator IDGenerator,
) *RestoreSessionUseCase {
	return &RestoreSessionUseCase{
		stateRepo:   stateRepo,
		content:     content,
		fs:          fs,
		idGenerator: idGenerator,
	}
}

// RestoreOutput describes the rebuilt window.
type RestoreOutput struct {
	Window *entity.Window
	// FocusTarget is the first pane of the active tab.
	FocusTarget *entity.Pane
	// Restored is false when a fresh tab was created instead.
	Restored bool
}

// Execute loads the session document and rebuilds its tabs. The returned
// error is non-nil only when not even a fresh terminal could be created.
func (uc *RestoreSessionUseCase) Execute(ctx context.Context) (*RestoreOutput, error) {
	log := logging.FromContext(ctx)
	w := entity.NewWindow()

	doc, err := uc.stateRepo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		log.Info().Msg("no stored session, starting fresh")
	case err != nil:
		log.Warn().Err(err).Msg("stored session unreadable, starting fresh")
	case doc == nil:
		log.Info().Msg("stored session is empty, starting fresh")
	default:
		uc.rebuild(ctx, w, doc)
	}

	if w.Count() == 0 {
		if err := uc.fresh(ctx, w); err != nil {
			return nil, err
		}
		return &RestoreOutput{
			Window:      w,
			FocusTarget: entity.FirstLeaf(w.ActiveTab().Root),
		}, nil
	}

	log.Info().
		Int("tab_count", w.Count()).
		Int("pane_count", w.PaneCount()).
		Int("active_tab", w.ActiveIndex).
		Msg("session restored")

	return &RestoreOutput{
		Window:      w,
		FocusTarget: entity.FirstLeaf(w.ActiveTab().Root),
		Restored:    true,
	}, nil
}

func (uc *RestoreSessionUseCase) rebuild(ctx context.Context, w *entity.Window, doc *entity.SessionDocument) {
	log := logging.FromContext(ctx)

	w.Maximized = doc.Maximized
	if doc.Width > 0 {
		w.Width = doc.Width
	}
	if doc.Height > 0 {
		w.Height = doc.Height
	}

	for i, snap := range doc.Tabs {
		root := uc.buildNode(ctx, snap)
		if root == nil {
			log.Debug().Int("tab_index", i).Msg("skipping tab with no restorable panes")
			continue
		}
		w.AddTab(&entity.Tab{
			ID:        entity.TabID(uc.idGenerator()),
			Root:      root,
			CreatedAt: time.Now(),
		})
	}

	if doc.ActiveTab >= 0 && doc.ActiveTab < w.Count() {
		w.ActiveIndex = doc.ActiveTab
	} else {
		w.ActiveIndex = 0
	}
}

// buildNode returns nil for a subtree with nothing restorable in it.
func (uc *RestoreSessionUseCase) buildNode(ctx context.Context, snap *entity.NodeSnapshot) entity.PaneNode {
	if snap == nil {
		return nil
	}
	if !snap.IsSplit() {
		return uc.buildLeaf(ctx, snap)
	}

	start := uc.buildNode(ctx, snap.Start)
	end := uc.buildNode(ctx, snap.End)
	switch {
	case start == nil:
		return end
	case end == nil:
		return start
	}

	position := snap.Position
	if position < 0 {
		position = 0
	}
	return entity.NewSplit(uc.idGenerator(), entity.ParseOrientation(snap.Orientation), position, start, end)
}

func (uc *RestoreSessionUseCase) buildLeaf(ctx context.Context, snap *entity.NodeSnapshot) entity.PaneNode {
	log := logging.FromContext(ctx)
	kind := snap.Kind()

	param := snap.Token()
	switch kind {
	case entity.KindBrowser:
		if param == "" {
			param = entity.DefaultBrowserURL
		}
	default:
		param = uc.directoryOrHome(ctx, param)
	}

	contentID, err := uc.content.CreatePane(ctx, kind, param)
	if err != nil {
		log.Warn().Err(err).Str("kind", kind.String()).Msg("failed to recreate pane")
		return nil
	}
	return entity.NewPane(entity.PaneID(uc.idGenerator()), kind, contentID)
}

// directoryOrHome keeps dir when it is still an enterable directory and
// falls back to the home directory otherwise.
func (uc *RestoreSessionUseCase) directoryOrHome(ctx context.Context, dir string) string {
	if uc.fs == nil {
		return dir
	}
	if dir != "" {
		ok, err := uc.fs.IsDirectory(ctx, dir)
		if err == nil && ok {
			return dir
		}
		logging.FromContext(ctx).Debug().Str("dir", dir).Msg("directory gone, using home")
	}
	home, err := uc.fs.HomeDir()
	if err != nil {
		return ""
	}
	return home
}

func (uc *RestoreSessionUseCase) fresh(ctx context.Context, w *entity.Window) error {
	contentID, err := uc.content.CreatePane(ctx, entity.KindTerminal, uc.directoryOrHome(ctx, ""))
	if err != nil {
		return fmt.Errorf("create initial terminal: %w", err)
	}
	pane := entity.NewPane(entity.PaneID(uc.idGenerator()), entity.KindTerminal, contentID)
	w.AddTab(entity.NewTab(entity.TabID(uc.idGenerator()), pane))
	return nil
}
