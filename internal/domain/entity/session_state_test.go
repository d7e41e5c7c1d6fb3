package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotFromWindow_Document(t *testing.T) {
	a := NewPane("a", KindTerminal, "ca")
	b := NewPane("b", KindExplorer, "cb")
	c := NewPane("c", KindBrowser, "cc")
	w := NewWindow()
	w.AddTab(&Tab{ID: "t1", Root: NewSplit("s", Horizontal, 400, a, NewSplit("s2", Vertical, 0, b, c))})
	w.Width, w.Height = 1024, 768

	tokens := map[PaneID]string{"a": "/home/me", "b": "/tmp"}
	doc := SnapshotFromWindow(w, func(p *Pane) string { return tokens[p.ID] })

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	expected := `{
		"maximized": false, "width": 1024, "height": 768, "active_tab": 0,
		"tabs": [{
			"type": "split", "orientation": "horizontal", "position": 400,
			"start": {"type": "terminal", "cwd": "/home/me"},
			"end": {
				"type": "split", "orientation": "vertical", "position": 0,
				"start": {"type": "explorer", "path": "/tmp"},
				"end": {"type": "browser", "url": "https://www.google.com"}
			}
		}]
	}`
	assert.JSONEq(t, expected, string(data))
	assert.Equal(t, 3, doc.CountPanes())
}

func TestSnapshotFromWindow_ActiveTabSkipsEmptyTabs(t *testing.T) {
	w := NewWindow()
	w.AddTab(&Tab{ID: "empty"})
	w.AddTab(NewTab("t2", NewPane("a", KindTerminal, "ca")))
	w.AddTab(NewTab("t3", NewPane("b", KindTerminal, "cb")))
	w.ActiveIndex = 2

	doc := SnapshotFromWindow(w, nil)
	require.Len(t, doc.Tabs, 2)
	assert.Equal(t, 1, doc.ActiveTab, "index counts only the tabs written")

	w.ActiveIndex = 0
	doc = SnapshotFromWindow(w, nil)
	assert.Equal(t, 0, doc.ActiveTab)
}

func TestSnapshotFromWindow_Empty(t *testing.T) {
	doc := SnapshotFromWindow(NewWindow(), nil)
	assert.Empty(t, doc.Tabs)
	assert.Equal(t, DefaultWindowWidth, doc.Width)
}

func TestNodeSnapshot_UnmarshalNullChildren(t *testing.T) {
	raw := `{"type":"split","orientation":"vertical","position":12,"start":null,"end":{"type":"explorer","path":"/srv"}}`

	var node NodeSnapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &node))

	assert.True(t, node.IsSplit())
	assert.Nil(t, node.Start)
	require.NotNil(t, node.End)
	assert.Equal(t, KindExplorer, node.End.Kind())
	assert.Equal(t, "/srv", node.End.Token())
	assert.Equal(t, 1, (&SessionDocument{Tabs: []*NodeSnapshot{&node}}).CountPanes())
}

func TestNodeSnapshot_UnknownTypeReadsAsTerminal(t *testing.T) {
	node := &NodeSnapshot{Type: "teletype", Cwd: "/x"}
	assert.Equal(t, KindTerminal, node.Kind())

	_, err := json.Marshal(node)
	assert.Error(t, err)
}
