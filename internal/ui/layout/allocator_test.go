package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koder-native/kterm/internal/domain/entity"
)

func pane(id string) *entity.Pane {
	return entity.NewPane(entity.PaneID(id), entity.KindTerminal, entity.ContentID(id))
}

func TestAllocator_BeforeLayout(t *testing.T) {
	a := NewAllocator()
	_, ok := a.Bounds(pane("x"))
	assert.False(t, ok)
}

func TestAllocator_LayoutNestedSplits(t *testing.T) {
	left, top, bottom := pane("left"), pane("top"), pane("bottom")
	inner := entity.NewSplit("inner", entity.Vertical, 0, top, bottom)
	root := entity.NewSplit("root", entity.Horizontal, 300, left, inner)

	a := NewAllocator()
	a.Layout("tab", root, entity.Rect{W: 1000, H: 600})

	r, ok := a.Bounds(left)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{W: 300, H: 600}, r)

	r, _ = a.Bounds(top)
	assert.Equal(t, entity.Rect{X: 300, W: 700, H: 300}, r)

	r, _ = a.Bounds(bottom)
	assert.Equal(t, entity.Rect{X: 300, Y: 300, W: 700, H: 300}, r)

	// Unset position is written back once laid out.
	assert.Equal(t, 300, inner.Position)
	assert.Len(t, a.PaneRects("tab"), 3)
}

func TestAllocator_RevalidatesStalePosition(t *testing.T) {
	root := entity.NewSplit("root", entity.Horizontal, 5000, pane("a"), pane("b"))

	a := NewAllocator()
	a.Layout("tab", root, entity.Rect{W: 800, H: 600})

	assert.Equal(t, 400, root.Position)
}

func TestAllocator_EmptyAreaAssignsNothing(t *testing.T) {
	p := pane("a")
	a := NewAllocator()
	a.Layout("tab", p, entity.Rect{})

	_, ok := a.Bounds(p)
	assert.False(t, ok)
}

func TestAllocator_Forget(t *testing.T) {
	p := pane("a")
	a := NewAllocator()
	a.Layout("tab", p, entity.Rect{W: 10, H: 10})
	a.Forget("tab")

	_, ok := a.Bounds(p)
	assert.False(t, ok)
}
