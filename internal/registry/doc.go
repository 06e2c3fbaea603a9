// Package registry owns the set of installed extensions. It discovers
// them at startup by scanning the extension search paths, installs new
// ones from zip bundles, orchestrates enable/disable/uninstall, and
// answers aggregate theme and palette lookups. All mutation goes through
// the Registry; consumers never hold an owning reference.
package registry
