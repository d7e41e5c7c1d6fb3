package usecase_test

import (
	"testing"

	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swapFixture struct {
	window     *entity.Window
	a, b, c, d *entity.Pane
	outer      *entity.Split
	inner      *entity.Split
	other      *entity.Tab
}

// newSwapFixture builds tab-1 = h(a, v(b, c)) and tab-2 = d.
func newSwapFixture() *swapFixture {
	f := &swapFixture{
		a: entity.NewPane("a", entity.KindTerminal, "ca"),
		b: entity.NewPane("b", entity.KindExplorer, "cb"),
		c: entity.NewPane("c", entity.KindBrowser, "cc"),
		d: entity.NewPane("d", entity.KindTerminal, "cd"),
	}
	f.inner = entity.NewSplit("inner", entity.Vertical, 250, f.b, f.c)
	f.outer = entity.NewSplit("outer", entity.Horizontal, 400, f.a, f.inner)
	f.other = entity.NewTab("tab-2", f.d)

	f.window = entity.NewWindow()
	f.window.AddTab(&entity.Tab{ID: "tab-1", Root: f.outer})
	f.window.AddTab(f.other)
	f.window.ActiveIndex = 0
	return f
}

func TestSwapPanesUseCase_AcrossSplits(t *testing.T) {
	ctx := testContext()
	f := newSwapFixture()
	uc := usecase.NewSwapPanesUseCase()

	require.NoError(t, uc.Execute(ctx, usecase.SwapPanesInput{Window: f.window, Source: "a", Destination: "c"}))

	assert.Equal(t, entity.PaneNode(f.c), f.outer.Start)
	assert.Equal(t, entity.PaneNode(f.a), f.inner.End)
	assert.Equal(t, 400, f.outer.Position, "positions are untouched")
	assert.Equal(t, 250, f.inner.Position)
	assert.Equal(t, "h(browser,v(explorer,terminal))", entity.Shape(f.outer))
}

func TestSwapPanesUseCase_Siblings(t *testing.T) {
	ctx := testContext()
	f := newSwapFixture()
	uc := usecase.NewSwapPanesUseCase()

	require.NoError(t, uc.Execute(ctx, usecase.SwapPanesInput{Window: f.window, Source: "b", Destination: "c"}))

	assert.Equal(t, entity.PaneNode(f.c), f.inner.Start)
	assert.Equal(t, entity.PaneNode(f.b), f.inner.End)
	assert.NoError(t, entity.Validate(f.outer))
}

func TestSwapPanesUseCase_IsItsOwnInverse(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewSwapPanesUseCase()

	pairs := [][2]entity.PaneID{{"a", "b"}, {"a", "c"}, {"b", "c"}, {"c", "d"}, {"a", "d"}}
	for _, pair := range pairs {
		f := newSwapFixture()
		before := entity.Shape(f.outer)
		leaves := f.window.Tabs[0].Panes()
		otherRoot := f.other.Root

		in := usecase.SwapPanesInput{Window: f.window, Source: pair[0], Destination: pair[1]}
		require.NoError(t, uc.Execute(ctx, in))
		require.NoError(t, uc.Execute(ctx, in))

		assert.Equal(t, before, entity.Shape(f.outer), "pair %v", pair)
		assert.Equal(t, leaves, f.window.Tabs[0].Panes(), "pair %v", pair)
		assert.Equal(t, otherRoot, f.other.Root, "pair %v", pair)
	}
}

func TestSwapPanesUseCase_AcrossTabs(t *testing.T) {
	ctx := testContext()
	f := newSwapFixture()
	uc := usecase.NewSwapPanesUseCase()

	require.NoError(t, uc.Execute(ctx, usecase.SwapPanesInput{Window: f.window, Source: "d", Destination: "b"}))

	assert.Equal(t, entity.PaneNode(f.b), f.other.Root)
	assert.Equal(t, entity.PaneNode(f.d), f.inner.Start)
}

func TestSwapPanesUseCase_Rejections(t *testing.T) {
	ctx := testContext()
	f := newSwapFixture()
	uc := usecase.NewSwapPanesUseCase()
	before := entity.Shape(f.outer)

	err := uc.Execute(ctx, usecase.SwapPanesInput{Window: f.window, Source: "a", Destination: "a"})
	assert.ErrorIs(t, err, usecase.ErrSamePane)

	err = uc.Execute(ctx, usecase.SwapPanesInput{Window: f.window, Source: "gone", Destination: "a"})
	assert.ErrorIs(t, err, usecase.ErrPaneNotLive)

	err = uc.Execute(ctx, usecase.SwapPanesInput{Window: f.window, Source: "a", Destination: "gone"})
	assert.ErrorIs(t, err, usecase.ErrPaneNotFound)

	assert.Equal(t, before, entity.Shape(f.outer))
}
