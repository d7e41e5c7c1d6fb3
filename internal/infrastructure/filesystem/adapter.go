package filesystem

import (
	"context"
	"errors"
	"os"

	"golang.org/x/sys/unix"

	"github.com/koder-native/kterm/internal/application/port"
)

// Adapter implements port.FileSystem using the OS filesystem.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

// IsDirectory reports whether path is a directory the current user may
// enter. A missing path is not an error.
func (a *Adapter) IsDirectory(_ context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}
	if err := unix.Access(path, unix.X_OK); err != nil {
		return false, nil
	}
	return true, nil
}

// HomeDir returns $HOME, falling back to the root directory when it is
// unset so restored panes always get somewhere to start.
func (a *Adapter) HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "/", nil
	}
	return home, nil
}

var _ port.FileSystem = (*Adapter)(nil)
