package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowWithTabs(ids ...string) *Window {
	w := NewWindow()
	for _, id := range ids {
		w.AddTab(NewTab(TabID(id), leaf("p-"+id)))
	}
	return w
}

func TestWindow_RemoveTab_KeepsNeighbourActive(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		remove     TabID
		wantActive TabID
	}{
		{name: "remove active middle selects next", active: 1, remove: "b", wantActive: "c"},
		{name: "remove active last selects previous", active: 2, remove: "c", wantActive: "b"},
		{name: "remove before active shifts index", active: 2, remove: "a", wantActive: "c"},
		{name: "remove after active keeps index", active: 0, remove: "c", wantActive: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := windowWithTabs("a", "b", "c")
			w.ActiveIndex = tt.active

			require.True(t, w.RemoveTab(tt.remove))
			assert.Equal(t, tt.wantActive, w.ActiveTab().ID)
		})
	}
}

func TestWindow_RemoveLastTab(t *testing.T) {
	w := windowWithTabs("a")
	require.True(t, w.RemoveTab("a"))
	assert.Zero(t, w.Count())
	assert.Nil(t, w.ActiveTab())
	assert.False(t, w.RemoveTab("a"))
}

func TestWindow_MoveTab(t *testing.T) {
	w := windowWithTabs("a", "b", "c")
	w.ActiveIndex = 0

	require.True(t, w.MoveTab("a", 2))
	assert.Equal(t, TabID("b"), w.Tabs[0].ID)
	assert.Equal(t, TabID("a"), w.Tabs[2].ID)
	assert.Equal(t, 2, w.ActiveIndex)
	assert.False(t, w.MoveTab("a", 3))
}

func TestWindow_FindPane(t *testing.T) {
	w := windowWithTabs("a", "b")

	tab, pane := w.FindPane("p-b")
	require.NotNil(t, pane)
	assert.Equal(t, TabID("b"), tab.ID)

	tab, pane = w.FindPaneByContent("c-p-a")
	require.NotNil(t, pane)
	assert.Equal(t, TabID("a"), tab.ID)

	_, pane = w.FindPane("missing")
	assert.Nil(t, pane)
	assert.Equal(t, 2, w.PaneCount())
}

func TestTab_Title(t *testing.T) {
	p := leaf("a")
	tab := NewTab("t", p)
	assert.Equal(t, "Terminal", tab.Title())

	p.Title = "vim"
	p.Active = true
	assert.Equal(t, "vim", tab.Title())

	tab.Name = "work"
	assert.Equal(t, "work", tab.Title())
}
