// Package config persists named boolean settings, most notably the
// per-extension enabled flag. The Store interface keeps the persistence
// mechanism injectable for tests; the default implementation is a
// viper-backed YAML file under the PixelForge home directory.
package config
