package port

import "context"

//go:generate mockgen -source=filesystem.go -destination=mock_port/filesystem.go -package=mock_port

// FileSystem provides the file system checks needed when restoring panes.
type FileSystem interface {
	// IsDirectory reports whether path exists, is a directory and can be
	// entered by the current user.
	IsDirectory(ctx context.Context, path string) (bool, error)
	// HomeDir returns the user's home directory.
	HomeDir() (string, error)
}
