package port

import "github.com/koder-native/kterm/internal/domain/entity"

// Geometry exposes the on-screen bounds assigned by the last layout pass.
// Before the first pass Bounds reports false and callers fall back to
// geometry-free behaviour.
type Geometry interface {
	Bounds(node entity.PaneNode) (entity.Rect, bool)
}
