package extension

import (
	"fmt"
	"maps"
	"os"

	"github.com/pixelforge-labs/pixelforge/internal/branding"
	"github.com/pixelforge-labs/pixelforge/internal/config"
)

// ConfigSection is the config.Store section holding per-extension
// enabled flags, keyed by extension name.
const ConfigSection = "extensions"

// ThemePrefs exposes the currently selected theme. An extension that
// contributes the selected theme cannot be disabled or uninstalled.
type ThemePrefs interface {
	SelectedTheme() string
}

// Extension is one installed (or loadable) extension. Its name is the
// stable identity across reinstalls; the built-in flag is fixed at
// construction and never changes.
type Extension struct {
	path        string
	name        string
	displayName string
	version     string
	enabled     bool
	installed   bool
	builtIn     bool

	themes   map[string]string
	palettes map[string]string

	store config.Store
	prefs ThemePrefs
}

// Options carries the constructor inputs for New.
type Options struct {
	// Path is the extension's root directory on disk.
	Path        string
	Name        string
	DisplayName string
	Version     string
	Enabled     bool
	// BuiltIn marks extensions living under an installation-managed
	// search path rather than the user extensions directory.
	BuiltIn bool

	Store config.Store
	Prefs ThemePrefs
}

// New constructs an installed Extension.
func New(opts Options) *Extension {
	return &Extension{
		path:        opts.Path,
		name:        opts.Name,
		displayName: opts.DisplayName,
		version:     opts.Version,
		enabled:     opts.Enabled,
		installed:   true,
		builtIn:     opts.BuiltIn,
		themes:      make(map[string]string),
		palettes:    make(map[string]string),
		store:       opts.Store,
		prefs:       opts.Prefs,
	}
}

// Name returns the unique extension name.
func (e *Extension) Name() string { return e.name }

// DisplayName returns the human-readable name from the manifest.
func (e *Extension) DisplayName() string { return e.displayName }

// Version returns the manifest version string, possibly empty.
func (e *Extension) Version() string { return e.version }

// Path returns the extension's root directory.
func (e *Extension) Path() string { return e.path }

// IsEnabled reports whether the extension's contributions are visible.
func (e *Extension) IsEnabled() bool { return e.enabled }

// IsInstalled reports whether the extension's files are on disk.
func (e *Extension) IsInstalled() bool { return e.installed }

// IsBuiltIn reports whether the extension ships with the installation.
func (e *Extension) IsBuiltIn() bool { return e.builtIn }

// AddTheme registers a contributed theme. Later additions with the same
// id overwrite earlier ones.
func (e *Extension) AddTheme(id, path string) {
	e.themes[id] = path
}

// AddPalette registers a contributed palette. Later additions with the
// same id overwrite earlier ones.
func (e *Extension) AddPalette(id, path string) {
	e.palettes[id] = path
}

// Themes returns a copy of the theme id → absolute path mapping.
func (e *Extension) Themes() map[string]string {
	return maps.Clone(e.themes)
}

// Palettes returns a copy of the palette id → absolute path mapping.
func (e *Extension) Palettes() map[string]string {
	return maps.Clone(e.palettes)
}

// ThemePath returns the absolute path of the contributed theme with the
// given id.
func (e *Extension) ThemePath(id string) (string, bool) {
	p, ok := e.themes[id]
	return p, ok
}

// PalettePath returns the absolute path of the contributed palette with
// the given id.
func (e *Extension) PalettePath(id string) (string, bool) {
	p, ok := e.palettes[id]
	return p, ok
}

// CanBeDisabled reports whether disabling is allowed by policy. The
// default theme extension and the extension contributing the currently
// selected theme stay enabled.
func (e *Extension) CanBeDisabled() bool {
	return e.enabled &&
		!e.isCurrentTheme() &&
		!e.isDefaultTheme() // default theme cannot be disabled or uninstalled
}

// CanBeUninstalled reports whether uninstalling is allowed by policy.
// Built-in extensions can never be uninstalled.
func (e *Extension) CanBeUninstalled() bool {
	return e.installed &&
		!e.builtIn &&
		!e.isCurrentTheme() &&
		!e.isDefaultTheme()
}

// Enable persists and applies the requested enabled state. Asking for
// the current state is a no-op and performs no write.
func (e *Extension) Enable(state bool) error {
	if e.enabled == state {
		return nil
	}

	e.store.SetBool(ConfigSection, e.name, state)
	if err := e.store.Flush(); err != nil {
		return fmt.Errorf("persisting enabled state for %s: %w", e.name, err)
	}

	e.enabled = state
	return nil
}

// Uninstall deletes every file under the extension root, then the root
// itself, and marks the extension disabled and uninstalled. Already
// uninstalled extensions and extensions failing CanBeUninstalled are a
// safe no-op. Irreversible; a deletion failure partway is not rolled
// back.
func (e *Extension) Uninstall() error {
	if !e.installed {
		return nil
	}
	if !e.CanBeUninstalled() {
		return nil
	}

	if err := os.RemoveAll(e.path); err != nil {
		return fmt.Errorf("removing extension directory %s: %w", e.path, err)
	}

	e.enabled = false
	e.installed = false
	return nil
}

func (e *Extension) isCurrentTheme() bool {
	if e.prefs == nil {
		return false
	}
	selected := e.prefs.SelectedTheme()
	if selected == "" {
		return false
	}
	_, ok := e.themes[selected]
	return ok
}

func (e *Extension) isDefaultTheme() bool {
	return e.name == branding.DefaultThemeExtension()
}
