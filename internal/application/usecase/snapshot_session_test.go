package usecase_test

import (
	"context"
	"errors"
	"testing"

	portmocks "github.com/koder-native/kterm/internal/application/port/mocks"
	"github.com/koder-native/kterm/internal/application/usecase"
	"github.com/koder-native/kterm/internal/domain/entity"
	repomocks "github.com/koder-native/kterm/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSnapshotSessionUseCase_SavesDocument(t *testing.T) {
	ctx := testContext()

	term := entity.NewPane("a", entity.KindTerminal, "ca")
	files := entity.NewPane("b", entity.KindExplorer, "cb")
	web := entity.NewPane("c", entity.KindBrowser, "cc")
	w := entity.NewWindow()
	w.Width, w.Height, w.Maximized = 1024, 768, true
	w.AddTab(&entity.Tab{ID: "t1", Root: entity.NewSplit("s", entity.Vertical, 300, term, files)})
	w.AddTab(entity.NewTab("t2", web))
	w.ActiveIndex = 1

	content := portmocks.NewMockContentProvider(t)
	content.EXPECT().IdentityToken(mock.Anything, entity.ContentID("ca")).Return("/home/me/src", nil)
	content.EXPECT().IdentityToken(mock.Anything, entity.ContentID("cb")).Return("/home/me/docs", nil)
	content.EXPECT().IdentityToken(mock.Anything, entity.ContentID("cc")).Return("", errors.New("still loading"))

	repo := repomocks.NewMockSessionStateRepository(t)
	var saved *entity.SessionDocument
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.SessionDocument")).
		Run(func(_ context.Context, doc *entity.SessionDocument) { saved = doc }).
		Return(nil).Once()

	uc := usecase.NewSnapshotSessionUseCase(repo, content)
	require.NoError(t, uc.Execute(ctx, w))

	require.NotNil(t, saved)
	assert.True(t, saved.Maximized)
	assert.Equal(t, 1024, saved.Width)
	assert.Equal(t, 768, saved.Height)
	assert.Equal(t, 1, saved.ActiveTab)
	require.Len(t, saved.Tabs, 2)

	split := saved.Tabs[0]
	assert.Equal(t, entity.NodeTypeSplit, split.Type)
	assert.Equal(t, "vertical", split.Orientation)
	assert.Equal(t, 300, split.Position)
	assert.Equal(t, "/home/me/src", split.Start.Cwd)
	assert.Equal(t, "/home/me/docs", split.End.Path)
	assert.Equal(t, entity.DefaultBrowserURL, saved.Tabs[1].URL, "browser without a URL gets the default")
}

func TestSnapshotSessionUseCase_ZeroTabsDeletes(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionStateRepository(t)
	repo.EXPECT().Delete(mock.Anything).Return(nil).Once()

	uc := usecase.NewSnapshotSessionUseCase(repo, portmocks.NewMockContentProvider(t))

	require.NoError(t, uc.Execute(ctx, entity.NewWindow()))
}

func TestSnapshotSessionUseCase_SaveError(t *testing.T) {
	ctx := testContext()
	w := entity.NewWindow()
	w.AddTab(entity.NewTab("t1", entity.NewPane("a", entity.KindTerminal, "ca")))

	content := portmocks.NewMockContentProvider(t)
	content.EXPECT().IdentityToken(mock.Anything, mock.Anything).Return("/tmp", nil)
	repo := repomocks.NewMockSessionStateRepository(t)
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("read-only file system"))

	uc := usecase.NewSnapshotSessionUseCase(repo, content)
	err := uc.Execute(ctx, w)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session snapshot")
}
