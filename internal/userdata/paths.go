package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixelforge-labs/pixelforge/internal/branding"
)

// Directory and file name constants under the PixelForge home directory.
const (
	ExtensionsDir   = "extensions"
	DataDir         = "data"
	PreferencesFile = "preferences.yaml"
	ConfigFile      = "config.yaml"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// HomeRoot returns the path to the PixelForge home directory.
// It checks the PIXELFORGE_HOME environment variable first,
// then falls back to ~/.pixelforge.
func HomeRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// ExtensionsRoot returns the path to the user-writable extensions directory.
// It checks the PIXELFORGE_EXTENSIONS environment variable first,
// then falls back to ~/.pixelforge/extensions.
func ExtensionsRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("EXTENSIONS")); v != "" {
		return v, nil
	}
	root, err := HomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ExtensionsDir), nil
}

// DataRoot returns the path to the installation-managed data directory that
// ships built-in extensions. It checks the PIXELFORGE_DATA environment
// variable first, then falls back to ~/.pixelforge/data.
func DataRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("DATA")); v != "" {
		return v, nil
	}
	root, err := HomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, DataDir), nil
}

// PreferencesPath returns the path to preferences.yaml within the home
// directory.
func PreferencesPath() (string, error) {
	root, err := HomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, PreferencesFile), nil
}

// ConfigPath returns the path to config.yaml within the home directory.
func ConfigPath() (string, error) {
	root, err := HomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ConfigFile), nil
}
