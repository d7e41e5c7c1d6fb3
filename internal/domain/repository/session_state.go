package repository

import (
	"context"
	"errors"

	"github.com/koder-native/kterm/internal/domain/entity"
)

// ErrSessionNotFound is returned by Load when no session document exists.
var ErrSessionNotFound = errors.New("session document not found")

// SessionStateRepository persists the window session document.
type SessionStateRepository interface {
	// Load returns the stored document. A missing document yields
	// ErrSessionNotFound; an unreadable one yields a wrapped parse error.
	Load(ctx context.Context) (*entity.SessionDocument, error)

	// Save writes the document, replacing any previous one.
	Save(ctx context.Context, doc *entity.SessionDocument) error

	// Delete removes the stored document. Deleting a missing document is
	// not an error.
	Delete(ctx context.Context) error
}
