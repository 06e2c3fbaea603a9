package registry

import (
	"fmt"

	"github.com/pixelforge-labs/pixelforge/internal/manifest"
)

// MissingManifestError reports an archive with no manifest entry.
// Nothing is extracted in that case; the user extensions directory is
// left untouched.
type MissingManifestError struct {
	Archive string
}

func (e *MissingManifestError) Error() string {
	return fmt.Sprintf("archive %s contains no %s entry", e.Archive, manifest.FileName)
}

// InstallError reports an extension whose files were extracted but could
// not be registered.
type InstallError struct {
	Archive string
	Err     error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing extension from %s: %v", e.Archive, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }
