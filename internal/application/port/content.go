package port

import (
	"context"

	"github.com/koder-native/kterm/internal/domain/entity"
)

// ContentProvider creates and drives the content hosted by panes:
// terminals, file explorers and browsers. The layout engine never looks
// inside the content; it only holds the ContentID it was handed.
//
// Methods are called from the UI loop. Implementations must not block on
// process spawn or page loads; they start the work and report completion
// (including content exit) back through the coordinator.
type ContentProvider interface {
	// CreatePane starts content of the given kind. initParam is the initial
	// directory for terminals and explorers, or the URL for browsers; empty
	// means the provider default.
	CreatePane(ctx context.Context, kind entity.PaneKind, initParam string) (entity.ContentID, error)

	// DestroyPane releases the content. Destroying content that already
	// exited is not an error.
	DestroyPane(ctx context.Context, id entity.ContentID) error

	// Focus gives keyboard focus to the content.
	Focus(ctx context.Context, id entity.ContentID) error

	// IdentityToken returns the serializable state of the content: the
	// working directory, the browsed path or the URL. It may be called
	// concurrently for different ids.
	IdentityToken(ctx context.Context, id entity.ContentID) (string, error)
}
