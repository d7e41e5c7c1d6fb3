package port

import "github.com/koder-native/kterm/internal/domain/entity"

// WindowProvider gives the snapshot service read access to the live
// window. It is only called on the UI loop.
type WindowProvider interface {
	CurrentWindow() *entity.Window
}
