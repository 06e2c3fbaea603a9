package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/pixelforge-labs/pixelforge/internal/config"
	"github.com/pixelforge-labs/pixelforge/internal/extension"
	"github.com/pixelforge-labs/pixelforge/internal/manifest"
	"github.com/pixelforge-labs/pixelforge/internal/userdata"
)

// Options carries the collaborators injected into New.
type Options struct {
	// Store persists per-extension enabled flags. Required.
	Store config.Store
	// Prefs exposes the currently selected theme. May be nil.
	Prefs extension.ThemePrefs
	// Finder enumerates extension search paths. Defaults to
	// userdata.DefaultFinder.
	Finder userdata.Finder
	// Logger receives discovery and install diagnostics. Defaults to
	// log.Default().
	Logger *log.Logger
}

// Registry is the extension catalog. It exclusively owns every
// Extension record; external mutation goes through Enable, Uninstall,
// and InstallFromZip. Single-writer discipline: a multi-threaded host
// must serialize mutating calls externally.
type Registry struct {
	store   config.Store
	prefs   extension.ThemePrefs
	finder  userdata.Finder
	logger  *log.Logger
	userDir string

	exts   []*extension.Extension
	byName map[string]*extension.Extension
	events events
}

// New creates the user extensions directory if absent, then discovers
// installed extensions across every search path. Individual candidates
// that fail to load are logged and skipped; discovery itself only fails
// when the user extensions directory cannot be resolved.
func New(opts Options) (*Registry, error) {
	if opts.Store == nil {
		return nil, errors.New("config store is required")
	}
	if opts.Finder == nil {
		opts.Finder = userdata.DefaultFinder{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	userDir, err := opts.Finder.CreateUserExtensionsRoot()
	if err != nil {
		return nil, fmt.Errorf("resolving user extensions directory: %w", err)
	}

	r := &Registry{
		store:   opts.Store,
		prefs:   opts.Prefs,
		finder:  opts.Finder,
		logger:  opts.Logger,
		userDir: userDir,
		byName:  make(map[string]*extension.Extension),
	}
	r.logger.Debug("user extensions path", "dir", userDir)
	r.discover()
	return r, nil
}

// UserExtensionsDir returns the canonical absolute path of the
// user-writable extensions directory.
func (r *Registry) UserExtensionsDir() string {
	return r.userDir
}

// discover scans every search path for candidate extension directories.
// A candidate is any immediate subdirectory holding a manifest file.
func (r *Registry) discover() {
	for _, base := range r.finder.SearchPaths() {
		entries, err := os.ReadDir(base)
		if err != nil {
			// Search paths are allowed to be absent.
			continue
		}

		builtIn := canonical(base) != r.userDir

		for _, ent := range entries {
			if !ent.IsDir() {
				continue
			}
			dir := filepath.Join(base, ent.Name())
			manifestPath := filepath.Join(dir, manifest.FileName)

			if _, err := os.Stat(manifestPath); err != nil {
				r.logger.Debug("no manifest, skipping candidate", "dir", dir)
				continue
			}

			r.logger.Debug("loading extension", "manifest", manifestPath)
			if _, err := r.load(dir, manifestPath, builtIn, false); err != nil {
				r.logger.Warn("skipping extension", "dir", dir, "err", err)
			}
		}
	}
}

// load parses a manifest, builds the Extension, and registers it. When
// replace is false a duplicate name is an error and the earlier record
// wins; install passes replace=true so reinstalling updates the record
// in place.
func (r *Registry) load(dir, manifestPath string, builtIn, replace bool) (*extension.Extension, error) {
	m, err := manifest.Parse(manifestPath)
	if err != nil {
		return nil, err
	}

	if existing, ok := r.byName[m.Name]; ok && !replace {
		return nil, fmt.Errorf("duplicate extension name %q, already loaded from %s", m.Name, existing.Path())
	}

	ext := extension.New(extension.Options{
		Path:        dir,
		Name:        m.Name,
		DisplayName: m.DisplayName,
		Version:     m.Version,
		// Extensions are enabled by default.
		Enabled: r.store.GetBool(extension.ConfigSection, m.Name, true),
		BuiltIn: builtIn,
		Store:   r.store,
		Prefs:   r.prefs,
	})

	if m.Contributes != nil {
		// Contribution paths are always resolved against the extension
		// root before being stored.
		for _, c := range m.Contributes.Themes {
			ext.AddTheme(c.ID, filepath.Join(dir, filepath.FromSlash(c.Path)))
		}
		for _, c := range m.Contributes.Palettes {
			ext.AddPalette(c.ID, filepath.Join(dir, filepath.FromSlash(c.Path)))
		}
	}

	r.register(ext)
	r.logger.Debug("extension loaded", "name", ext.Name(), "builtin", ext.IsBuiltIn())
	return ext, nil
}

// register appends ext in discovery order, or swaps it into the existing
// slot when a record with the same name is being replaced.
func (r *Registry) register(ext *extension.Extension) {
	if old, ok := r.byName[ext.Name()]; ok {
		for i, e := range r.exts {
			if e == old {
				r.exts[i] = ext
				break
			}
		}
		r.byName[ext.Name()] = ext
		return
	}
	r.exts = append(r.exts, ext)
	r.byName[ext.Name()] = ext
}

// List returns the extensions in discovery/install order.
func (r *Registry) List() []*extension.Extension {
	out := make([]*extension.Extension, len(r.exts))
	copy(out, r.exts)
	return out
}

// Find returns the extension with the given name.
func (r *Registry) Find(name string) (*extension.Extension, bool) {
	ext, ok := r.byName[name]
	return ext, ok
}

// ThemePath returns the path of the first enabled extension's theme with
// the given id, in catalog order.
func (r *Registry) ThemePath(id string) (string, bool) {
	for _, ext := range r.exts {
		if !ext.IsEnabled() { // ignore disabled extensions
			continue
		}
		if p, ok := ext.ThemePath(id); ok {
			return p, true
		}
	}
	return "", false
}

// PalettePath returns the path of the first enabled extension's palette
// with the given id, in catalog order.
func (r *Registry) PalettePath(id string) (string, bool) {
	for _, ext := range r.exts {
		if !ext.IsEnabled() {
			continue
		}
		if p, ok := ext.PalettePath(id); ok {
			return p, true
		}
	}
	return "", false
}

// Palettes merges every enabled extension's palettes into one mapping.
// Later extensions in catalog order win on id collision.
func (r *Registry) Palettes() map[string]string {
	palettes := make(map[string]string)
	for _, ext := range r.exts {
		if !ext.IsEnabled() {
			continue
		}
		for id, p := range ext.Palettes() {
			palettes[id] = p
		}
	}
	return palettes
}

// Enable applies the requested enabled state and announces the changed
// contributions.
func (r *Registry) Enable(ext *extension.Extension, state bool) error {
	if err := ext.Enable(state); err != nil {
		return err
	}
	r.emitChanges(ext)
	return nil
}

// Uninstall removes the extension's files and announces the changed
// contributions.
func (r *Registry) Uninstall(ext *extension.Extension) error {
	r.logger.Debug("uninstalling extension", "name", ext.Name(), "dir", ext.Path())
	if err := ext.Uninstall(); err != nil {
		return err
	}
	r.emitChanges(ext)
	return nil
}

func canonical(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Clean(dir)
	}
	return filepath.Clean(abs)
}
