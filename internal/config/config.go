package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pixelforge-labs/pixelforge/internal/userdata"
)

// Store is the durable boolean-settings collaborator. Values are grouped
// into sections; the extensions subsystem uses the "extensions" section
// keyed by extension name.
type Store interface {
	// GetBool returns the stored value, or def if the key is unset.
	GetBool(section, key string, def bool) bool

	// SetBool records a value in memory. Flush makes it durable.
	SetBool(section, key string, value bool)

	// Flush writes all pending values to the backing file.
	Flush() error
}

// FileStore is a viper-backed Store persisting to a single YAML file.
type FileStore struct {
	v    *viper.Viper
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a FileStore persisting to the given file. The file
// is read if it exists; a missing file is treated as an empty store.
func NewFileStore(path string) (*FileStore, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return &FileStore{v: v, path: path}, nil
}

// NewDefaultFileStore returns a FileStore at the standard location,
// ~/.pixelforge/config.yaml.
func NewDefaultFileStore() (*FileStore, error) {
	path, err := userdata.ConfigPath()
	if err != nil {
		return nil, err
	}
	return NewFileStore(path)
}

// GetBool returns the stored value for section.key, or def if unset.
func (s *FileStore) GetBool(section, key string, def bool) bool {
	full := section + "." + key
	if !s.v.IsSet(full) {
		return def
	}
	return s.v.GetBool(full)
}

// SetBool records a value for section.key.
func (s *FileStore) SetBool(section, key string, value bool) {
	s.v.Set(section+"."+key, value)
}

// Flush writes the store to disk, creating the parent directory if needed.
func (s *FileStore) Flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), userdata.DirPermNormal); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing config file %s: %w", s.path, err)
	}
	return nil
}
