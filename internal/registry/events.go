package registry

import "github.com/pixelforge-labs/pixelforge/internal/extension"

// Handler observes a single extension event. Handlers run synchronously
// in registration order on the goroutine that triggered the event.
type Handler func(*extension.Extension)

type events struct {
	newExtension   []Handler
	themesChange   []Handler
	palettesChange []Handler
}

// OnNewExtension registers a handler fired once per fresh install, before
// any change handlers for the same extension.
func (r *Registry) OnNewExtension(h Handler) {
	r.events.newExtension = append(r.events.newExtension, h)
}

// OnThemesChange registers a handler fired whenever an extension's theme
// contributions change visibility (install, enable, disable, uninstall).
func (r *Registry) OnThemesChange(h Handler) {
	r.events.themesChange = append(r.events.themesChange, h)
}

// OnPalettesChange registers a handler fired whenever an extension's
// palette contributions change visibility.
func (r *Registry) OnPalettesChange(h Handler) {
	r.events.palettesChange = append(r.events.palettesChange, h)
}

func (r *Registry) emitNewExtension(ext *extension.Extension) {
	for _, h := range r.events.newExtension {
		h(ext)
	}
}

// emitChanges fires the per-kind change handlers, but only for the kinds
// the extension actually contributes.
func (r *Registry) emitChanges(ext *extension.Extension) {
	if len(ext.Themes()) > 0 {
		for _, h := range r.events.themesChange {
			h(ext)
		}
	}
	if len(ext.Palettes()) > 0 {
		for _, h := range r.events.palettesChange {
			h(ext)
		}
	}
}
