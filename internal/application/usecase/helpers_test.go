package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	portmocks "github.com/koder-native/kterm/internal/application/port/mocks"
	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/logging"
	"github.com/koder-native/kterm/internal/ui/layout"
	"github.com/stretchr/testify/mock"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func sequentialIDs(prefix string) usecase.IDGenerator {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// newContentMock returns a provider mock that hands out c1, c2, ... and
// accepts any destroy or focus call.
func newContentMock(t *testing.T) *portmocks.MockContentProvider {
	content := portmocks.NewMockContentProvider(t)
	var (
		mu sync.Mutex
		n  int
	)
	content.EXPECT().CreatePane(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.PaneKind, string) (entity.ContentID, error) {
			mu.Lock()
			defer mu.Unlock()
			n++
			return entity.ContentID(fmt.Sprintf("c%d", n)), nil
		}).Maybe()
	content.EXPECT().DestroyPane(mock.Anything, mock.Anything).Return(nil).Maybe()
	content.EXPECT().Focus(mock.Anything, mock.Anything).Return(nil).Maybe()
	return content
}

type paneHarness struct {
	ctx    context.Context
	alloc  *layout.Allocator
	panes  *usecase.ManagePanesUseCase
	tab    *entity.Tab
	area   entity.Rect
	first  *entity.Pane
	nextID usecase.IDGenerator
}

func newPaneHarness(t *testing.T) *paneHarness {
	t.Helper()
	ids := sequentialIDs("n")
	alloc := layout.NewAllocator()
	first := entity.NewPane("p0", entity.KindTerminal, "c0")
	return &paneHarness{
		ctx:    testContext(),
		alloc:  alloc,
		panes:  usecase.NewManagePanesUseCase(newContentMock(t), alloc, ids),
		tab:    entity.NewTab("tab-1", first),
		area:   entity.Rect{W: 1200, H: 800},
		first:  first,
		nextID: ids,
	}
}

func (h *paneHarness) layout() {
	h.alloc.Layout(h.tab.ID, h.tab.Root, h.area)
}

func (h *paneHarness) split(t *testing.T, target *entity.Pane, o entity.Orientation) *entity.Pane {
	t.Helper()
	out, err := h.panes.Split(h.ctx, usecase.SplitPaneInput{
		Tab:         h.tab,
		Target:      target,
		Orientation: o,
	})
	if err != nil {
		t.Fatalf("split %s: %v", target.ID, err)
	}
	h.layout()
	return out.NewPane
}

func (h *paneHarness) close(t *testing.T, pane *entity.Pane) *usecase.ClosePaneOutput {
	t.Helper()
	out, err := h.panes.Close(h.ctx, usecase.ClosePaneInput{Tab: h.tab, Pane: pane})
	if err != nil {
		t.Fatalf("close %s: %v", pane.ID, err)
	}
	h.layout()
	return out
}

func (h *paneHarness) bounds(t *testing.T, node entity.PaneNode) entity.Rect {
	t.Helper()
	r, ok := h.alloc.Bounds(node)
	if !ok {
		t.Fatalf("node %v has no bounds", node)
	}
	return r
}
