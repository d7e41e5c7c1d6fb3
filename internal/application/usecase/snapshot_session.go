package usecase

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/domain/repository"
	"github.com/koder-native/kterm/internal/logging"
)

// tokenQueryLimit bounds concurrent identity token queries.
const tokenQueryLimit = 4

// SnapshotSessionUseCase handles saving session state snapshots.
type SnapshotSessionUseCase struct {
	stateRepo repository.SessionStateRepository
	content   port.ContentProvider
}

// NewSnapshotSessionUseCase creates a new SnapshotSessionUseCase.
func NewSnapshotSessionUseCase(
	stateRepo repository.SessionStateRepository,
	content port.ContentProvider,
) *SnapshotSessionUseCase {
	return &SnapshotSessionUseCase{stateRepo: stateRepo, content: content}
}

// Execute writes the window's session document. A window without tabs
// deletes the stored session instead, so the next start opens fresh.
func (uc *SnapshotSessionUseCase) Execute(ctx context.Context, w *entity.Window) error {
	log := logging.FromContext(ctx)

	if w == nil || w.Count() == 0 {
		log.Debug().Msg("no tabs left, removing session")
		if err := uc.stateRepo.Delete(ctx); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		return nil
	}

	tokens, err := uc.collectTokens(ctx, w)
	if err != nil {
		return fmt.Errorf("collect identity tokens: %w", err)
	}

	doc := entity.SnapshotFromWindow(w, func(p *entity.Pane) string {
		return tokens[p.ID]
	})

	log.Debug().
		Int("tab_count", len(doc.Tabs)).
		Int("pane_count", doc.CountPanes()).
		Int("active_tab", doc.ActiveTab).
		Msg("creating session snapshot")

	if err := uc.stateRepo.Save(ctx, doc); err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}
	return nil
}

// collectTokens asks the provider for every pane's identity token. A pane
// whose query fails is saved with an empty token rather than failing the
// whole snapshot.
func (uc *SnapshotSessionUseCase) collectTokens(ctx context.Context, w *entity.Window) (map[entity.PaneID]string, error) {
	log := logging.FromContext(ctx)
	tokens := make(map[entity.PaneID]string, w.PaneCount())
	if uc.content == nil {
		return tokens, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(tokenQueryLimit)

	for _, tab := range w.Tabs {
		for _, p := range tab.Panes() {
			g.Go(func() error {
				token, err := uc.content.IdentityToken(gctx, p.Content)
				if err != nil {
					log.Warn().Err(err).Str("pane_id", string(p.ID)).Msg("identity token unavailable")
					return nil
				}
				mu.Lock()
				tokens[p.ID] = token
				mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tokens, ctx.Err()
}
