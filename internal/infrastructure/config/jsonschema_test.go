package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigSchema(t *testing.T) {
	data, err := GenerateConfigSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "kterm Configuration", schema["title"])
	assert.Contains(t, string(data), "autosave_interval_ms")
	assert.Contains(t, string(data), "default_split_kind")
}

func TestGenerateSessionSchema(t *testing.T) {
	data, err := GenerateSessionSchema()
	require.NoError(t, err)

	assert.Contains(t, string(data), "active_tab")
	assert.Contains(t, string(data), "NodeSnapshot")
	assert.Contains(t, string(data), "orientation")
}

func TestWriteSchemaFile(t *testing.T) {
	isolateXDG(t)
	require.NoError(t, EnsureDirectories())

	path, err := WriteSchemaFile()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestSchemaProvider_CoversEveryAction(t *testing.T) {
	keys := NewSchemaProvider().GetSchema()

	names := make(map[string]KeyInfo, len(keys))
	for _, k := range keys {
		names[k.Key] = k
	}
	for _, action := range DefaultConfig().Keybindings.Actions() {
		assert.Contains(t, names, "keybindings."+action.Name)
	}
	assert.Equal(t, SectionSession, names["session.path"].Section)
	assert.Equal(t, "5000", names["session.autosave_interval_ms"].Default)
}
