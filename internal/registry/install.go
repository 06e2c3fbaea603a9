package registry

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/pixelforge-labs/pixelforge/internal/extension"
	"github.com/pixelforge-labs/pixelforge/internal/manifest"
	"github.com/pixelforge-labs/pixelforge/internal/zipfile"
)

// InstallFromZip installs an extension bundle into the user extensions
// directory and registers it.
//
// The archive is read twice: an inspection pass locates the manifest
// entry to learn the extension name (and the common path wrapping the
// bundle, if any), then an extraction pass writes every entry under the
// destination directory with the common path stripped. Entries outside
// the common path are foreign to the bundle and skipped. Partially
// extracted files from a failed install are not cleaned up; reinstalling
// simply overwrites them.
func (r *Registry) InstallFromZip(zipPath string) (*extension.Extension, error) {
	name, commonPath, err := r.inspectArchive(zipPath)
	if err != nil {
		return nil, err
	}

	// The name becomes a single directory component under the user
	// extensions root; a name resembling a path would escape it.
	if !safeExtensionName(name) {
		return nil, &InstallError{
			Archive: zipPath,
			Err:     fmt.Errorf("manifest declares unsafe extension name %q", name),
		}
	}

	dst := filepath.Join(r.userDir, name)
	r.logger.Debug("installing extension", "archive", zipPath, "dest", dst)

	if err := r.extractArchive(zipPath, commonPath, dst); err != nil {
		return nil, err
	}

	// Parse the manifest from its final on-disk location and register
	// it exactly like a discovered extension. Anything landing in the
	// user directory is by definition not built-in.
	ext, err := r.load(dst, filepath.Join(dst, manifest.FileName), false, true)
	if err != nil {
		return nil, &InstallError{Archive: zipPath, Err: err}
	}

	r.emitNewExtension(ext)
	r.emitChanges(ext)
	return ext, nil
}

// inspectArchive scans the archive for its manifest entry and returns
// the declared extension name plus the common path prefix to strip
// during extraction. The common path is the directory portion of the
// manifest entry including the trailing separator, or "" when the
// manifest sits at the archive root.
func (r *Registry) inspectArchive(zipPath string) (name, commonPath string, err error) {
	in, err := zipfile.Open(zipPath)
	if err != nil {
		return "", "", err
	}
	defer in.Close()

	for {
		e, err := in.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", "", err
		}
		if e.IsDir || path.Base(e.Name) != manifest.FileName {
			continue
		}

		if dir := path.Dir(e.Name); dir != "." {
			commonPath = dir + "/"
		}

		var buf bytes.Buffer
		if err := in.Copy(&buf); err != nil {
			return "", "", err
		}

		m, err := manifest.ParseBytes(buf.Bytes(), zipPath+"!"+e.Name)
		if err != nil {
			return "", "", err
		}
		return m.Name, commonPath, nil
	}

	return "", "", &MissingManifestError{Archive: zipPath}
}

// safeExtensionName reports whether name is usable as a directory name
// directly under the user extensions root.
func safeExtensionName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`)
}

// extractArchive reopens the archive (the reader is forward-only) and
// writes every bundle entry under dst with commonPath stripped.
func (r *Registry) extractArchive(zipPath, commonPath, dst string) error {
	in, err := zipfile.Open(zipPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out := zipfile.NewDiskWriter()
	for {
		e, err := in.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		name := e.Name
		if commonPath != "" {
			if !strings.HasPrefix(name, commonPath) {
				r.logger.Debug("skipping foreign entry", "entry", e.Name)
				continue
			}
			name = name[len(commonPath):]
			if name == "" {
				// The wrapping folder entry itself.
				continue
			}
		}

		if !zipfile.SafeRelPath(name) {
			r.logger.Warn("skipping unsafe entry", "entry", e.Name)
			continue
		}

		full := filepath.Join(dst, filepath.FromSlash(name))
		r.logger.Debug("extracting entry", "entry", e.Name, "to", full)
		if err := out.WriteEntry(full, e, in); err != nil {
			return err
		}
	}
}
