package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/koder-native/kterm/internal/domain/entity"
)

const schemaFilePerm = 0o644

// GenerateConfigSchema returns the JSON schema of config.toml.
func GenerateConfigSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/koder-native/kterm/config.schema.json"
	schema.Title = "kterm Configuration"
	schema.Description = "Configuration schema for kterm, a tiling terminal workspace"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSessionSchema returns the JSON schema of the session document.
func GenerateSessionSchema() ([]byte, error) {
	r := &jsonschema.Reflector{DoNotReference: false}
	schema := r.Reflect(&entity.SessionDocument{})

	schema.ID = "https://github.com/koder-native/kterm/session.schema.json"
	schema.Title = "kterm Session"
	schema.Description = "Saved window layout: geometry, active tab and one pane tree per tab"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json next to config.toml and
// returns its path.
func WriteSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	data, err := GenerateConfigSchema()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(configDir, "config.schema.json")
	if err := os.WriteFile(schemaFile, data, schemaFilePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
