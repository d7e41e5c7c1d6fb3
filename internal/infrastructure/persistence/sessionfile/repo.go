// Package sessionfile stores the session document as a JSON file, by
// default $XDG_CONFIG_HOME/kterm/session.json.
package sessionfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/domain/repository"
	"github.com/koder-native/kterm/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type sessionFileRepo struct {
	path string
}

// NewRepository creates a repository backed by the file at path.
func NewRepository(path string) repository.SessionStateRepository {
	return &sessionFileRepo{path: path}
}

// Path returns the file a repository created by NewRepository writes to.
func Path(repo repository.SessionStateRepository) string {
	if r, ok := repo.(*sessionFileRepo); ok {
		return r.path
	}
	return ""
}

// Parse decodes a session document. Comments and trailing commas are
// accepted so hand-edited files still load.
func Parse(data []byte) (*entity.SessionDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty session document")
	}
	var doc entity.SessionDocument
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("parsing session document: %w", err)
	}
	return &doc, nil
}

// Encode renders a document the way it is written to disk.
func Encode(doc *entity.SessionDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (r *sessionFileRepo) Load(ctx context.Context) (*entity.SessionDocument, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	log.Debug().
		Str("path", r.path).
		Int("tab_count", len(doc.Tabs)).
		Int("pane_count", doc.CountPanes()).
		Msg("session document loaded")
	return doc, nil
}

func (r *sessionFileRepo) Save(ctx context.Context, doc *entity.SessionDocument) error {
	log := logging.FromContext(ctx)
	if doc == nil {
		return errors.New("session document cannot be nil")
	}

	data, err := Encode(doc)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal session document")
		return fmt.Errorf("marshal session document: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			log.Debug().Err(rmErr).Str("path", tmpName).Msg("failed to remove temp session file")
		}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write session file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		cleanup()
		return fmt.Errorf("replace session file: %w", err)
	}

	log.Debug().
		Str("path", r.path).
		Int("tab_count", len(doc.Tabs)).
		Int("bytes", len(data)).
		Msg("session document saved")
	return nil
}

func (r *sessionFileRepo) Delete(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session file: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("path", r.path).Msg("session document removed")
	return nil
}
