package userdata

import (
	"fmt"
	"os"
	"path/filepath"
)

// Finder enumerates the base directories that are scanned for installed
// extensions, and resolves the user-writable extensions directory.
//
// Implementations may yield the same logical location more than once;
// callers are expected to deal with overlap between the built-in and user
// scopes.
type Finder interface {
	// SearchPaths returns candidate base directories in scan order.
	// Directories that do not exist are allowed in the result.
	SearchPaths() []string

	// CreateUserExtensionsRoot returns the user-writable extensions
	// directory in canonical absolute form, creating it if absent.
	CreateUserExtensionsRoot() (string, error)
}

// DefaultFinder resolves search paths from the standard PixelForge layout:
// the installation-managed data directory first, then the user extensions
// directory.
type DefaultFinder struct{}

var _ Finder = DefaultFinder{}

// SearchPaths returns the built-in extensions directory followed by the
// user extensions directory. Resolution failures yield a shorter list
// rather than an error; discovery treats missing directories as empty.
func (DefaultFinder) SearchPaths() []string {
	var paths []string
	if data, err := DataRoot(); err == nil {
		paths = append(paths, filepath.Join(data, ExtensionsDir))
	}
	if user, err := ExtensionsRoot(); err == nil {
		paths = append(paths, user)
	}
	return paths
}

// CreateUserExtensionsRoot creates ~/.pixelforge/extensions if needed and
// returns its canonical absolute path.
func (DefaultFinder) CreateUserExtensionsRoot() (string, error) {
	root, err := ExtensionsRoot()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(root, DirPermNormal); err != nil {
		return "", fmt.Errorf("creating extensions directory %s: %w", root, err)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving extensions directory %s: %w", root, err)
	}
	return filepath.Clean(abs), nil
}
