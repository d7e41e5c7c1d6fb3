package usecase_test

import (
	"errors"
	"testing"

	portmocks "github.com/koder-native/kterm/internal/application/port/mocks"
	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManageTabsUseCase_Create(t *testing.T) {
	ctx := testContext()
	content := portmocks.NewMockContentProvider(t)
	content.EXPECT().CreatePane(mock.Anything, entity.KindTerminal, "/srv").
		Return(entity.ContentID("c1"), nil).Once()

	uc := usecase.NewManageTabsUseCase(content, sequentialIDs("n"))
	w := entity.NewWindow()

	tab, err := uc.Create(ctx, usecase.CreateTabInput{Window: w, Cwd: "/srv", Name: "build"})
	require.NoError(t, err)

	assert.Equal(t, 1, w.Count())
	assert.Same(t, tab, w.ActiveTab())
	assert.Equal(t, "build", tab.Title())
	pane, ok := tab.Root.(*entity.Pane)
	require.True(t, ok)
	assert.Equal(t, entity.ContentID("c1"), pane.Content)
}

func TestManageTabsUseCase_CreateFailure(t *testing.T) {
	ctx := testContext()
	content := portmocks.NewMockContentProvider(t)
	content.EXPECT().CreatePane(mock.Anything, mock.Anything, mock.Anything).
		Return(entity.ContentID(""), errors.New("no pty"))

	uc := usecase.NewManageTabsUseCase(content, sequentialIDs("n"))
	w := entity.NewWindow()

	_, err := uc.Create(ctx, usecase.CreateTabInput{Window: w})
	require.Error(t, err)
	assert.Equal(t, 0, w.Count())
}

func TestManageTabsUseCase_CloseDestroysPanes(t *testing.T) {
	ctx := testContext()
	content := portmocks.NewMockContentProvider(t)
	content.EXPECT().DestroyPane(mock.Anything, entity.ContentID("t1-ca")).Return(nil).Once()
	content.EXPECT().DestroyPane(mock.Anything, entity.ContentID("t1-cb")).Return(errors.New("already gone")).Once()

	uc := usecase.NewManageTabsUseCase(content, sequentialIDs("n"))
	tab1, _, _ := twoPaneTab("t1")
	tab2 := entity.NewTab("t2", entity.NewPane("p", entity.KindTerminal, "cp"))
	w := entity.NewWindow()
	w.AddTab(tab1)
	w.AddTab(tab2)

	empty, err := uc.Close(ctx, w, "t1")
	require.NoError(t, err)
	assert.False(t, empty)
	assert.Equal(t, 1, w.Count())
	assert.Nil(t, tab1.Root)
	assert.Same(t, tab2, w.ActiveTab())
}

func TestManageTabsUseCase_CloseLastTabEmptiesWindow(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(newContentMock(t), sequentialIDs("n"))
	w := entity.NewWindow()
	w.AddTab(entity.NewTab("t1", entity.NewPane("p", entity.KindTerminal, "cp")))

	empty, err := uc.Close(ctx, w, "t1")
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = uc.Close(ctx, w, "t1")
	require.NoError(t, err)
	assert.True(t, empty, "closing a stale tab is a no-op")
}

func TestManageTabsUseCase_NextPreviousWrap(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(newContentMock(t), sequentialIDs("n"))
	w := entity.NewWindow()
	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, usecase.CreateTabInput{Window: w})
		require.NoError(t, err)
	}
	require.Equal(t, 2, w.ActiveIndex)

	require.NoError(t, uc.Next(ctx, w))
	assert.Equal(t, 0, w.ActiveIndex)

	require.NoError(t, uc.Previous(ctx, w))
	assert.Equal(t, 2, w.ActiveIndex)

	require.NoError(t, uc.Previous(ctx, w))
	assert.Equal(t, 1, w.ActiveIndex)

	assert.ErrorIs(t, uc.Switch(ctx, w, 3), usecase.ErrTabNotFound)
	assert.ErrorIs(t, uc.Next(ctx, entity.NewWindow()), usecase.ErrWindowRequired)
}

func TestManageTabsUseCase_MoveKeepsActiveTab(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(newContentMock(t), sequentialIDs("n"))
	w := entity.NewWindow()
	var tabs []*entity.Tab
	for i := 0; i < 3; i++ {
		tab, err := uc.Create(ctx, usecase.CreateTabInput{Window: w})
		require.NoError(t, err)
		tabs = append(tabs, tab)
	}
	require.NoError(t, uc.Switch(ctx, w, 0))

	require.NoError(t, uc.Move(ctx, w, tabs[0].ID, 2))

	assert.Equal(t, []*entity.Tab{tabs[1], tabs[2], tabs[0]}, w.Tabs)
	assert.Same(t, tabs[0], w.ActiveTab())

	assert.ErrorIs(t, uc.Move(ctx, w, tabs[0].ID, 7), usecase.ErrTabNotFound)
}

func TestManageTabsUseCase_RenameSurvivesPaneTitles(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(newContentMock(t), sequentialIDs("n"))
	w := entity.NewWindow()
	tab, err := uc.Create(ctx, usecase.CreateTabInput{Window: w})
	require.NoError(t, err)
	pane := entity.FirstLeaf(tab.Root)
	pane.Active = true

	require.NoError(t, uc.Rename(ctx, w, tab.ID, "logs"))
	pane.Title = "tail -f app.log"
	assert.Equal(t, "logs", tab.Title())

	require.NoError(t, uc.Rename(ctx, w, tab.ID, ""))
	assert.Equal(t, "tail -f app.log", tab.Title())

	assert.ErrorIs(t, uc.Rename(ctx, w, "missing", "x"), usecase.ErrTabNotFound)
}
