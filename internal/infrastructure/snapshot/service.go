package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/logging"
)

// DefaultInterval is the debounce delay used when none is configured.
const DefaultInterval = 5 * time.Second

// Service handles debounced session snapshots. Timers fire on their own
// goroutine, so the save itself is posted onto the UI loop that owns the
// window.
type Service struct {
	snapshotUC *usecase.SnapshotSessionUseCase
	provider   port.WindowProvider
	post       func(func()) bool
	interval   time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a new snapshot service. post schedules work on the
// UI loop, usually mainloop.Loop.Post.
func NewService(
	snapshotUC *usecase.SnapshotSessionUseCase,
	provider port.WindowProvider,
	post func(func()) bool,
	intervalMs int,
) *Service {
	interval := time.Duration(intervalMs) * time.Millisecond
	if intervalMs <= 0 {
		interval = DefaultInterval
	}
	return &Service{
		snapshotUC: snapshotUC,
		provider:   provider,
		post:       post,
		interval:   interval,
	}
}

// Start begins accepting dirty notifications.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// Stop cancels any pending save and writes the final state. Call it on the
// UI loop.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.dirty = true
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty signals that the window changed. Saves are debounced so a
// burst of splits produces one write.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true
	if s.ctx == nil || s.ctx.Err() != nil {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	ctx := s.ctx
	s.timer = time.AfterFunc(s.interval, func() {
		if ctx.Err() != nil {
			return
		}
		s.post(func() {
			if ctx.Err() != nil {
				return
			}
			if err := s.SaveNow(ctx); err != nil {
				logging.FromContext(ctx).Error().Err(err).Msg("failed to save session snapshot")
			}
		})
	})
}

// Dirty reports whether a save is owed.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// SaveNow writes the window immediately if anything changed. Call it on
// the UI loop.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.dirty = false
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	if err := s.snapshotUC.Execute(ctx, s.provider.CurrentWindow()); err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}
	return nil
}
