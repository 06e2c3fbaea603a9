package zipfile

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DiskWriter writes archive entries straight to the filesystem rather
// than producing a new container. Destination paths are taken as given;
// callers rewrite archive paths before handing entries over.
type DiskWriter struct{}

// NewDiskWriter returns a DiskWriter.
func NewDiskWriter() *DiskWriter {
	return &DiskWriter{}
}

// WriteEntry creates the file or directory described by e at dst, then
// pulls all data for the entry from r. A failure partway may leave a
// partial file behind; there is no rollback.
func (w *DiskWriter) WriteEntry(dst string, e Entry, r *Reader) error {
	if e.IsDir {
		if err := os.MkdirAll(dst, dirMode(e.Mode)); err != nil {
			return &WriteError{Path: dst, Err: err}
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return &WriteError{Path: dst, Err: err}
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode(e.Mode))
	if err != nil {
		return &WriteError{Path: dst, Err: err}
	}

	copyErr := r.Copy(&failTaggingWriter{w: f, path: dst})
	if cerr := f.Close(); copyErr == nil && cerr != nil {
		copyErr = &WriteError{Path: dst, Err: cerr}
	}
	return copyErr
}

// failTaggingWriter wraps write failures in *WriteError so they keep
// their identity through Reader.Copy.
type failTaggingWriter struct {
	w    io.Writer
	path string
}

func (t *failTaggingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil {
		return n, &WriteError{Path: t.path, Err: err}
	}
	return n, nil
}

// Zip entries created by some tools carry no mode bits at all; fall back
// to conventional permissions.
func fileMode(m fs.FileMode) fs.FileMode {
	if perm := m.Perm(); perm != 0 {
		return perm
	}
	return 0644
}

func dirMode(m fs.FileMode) fs.FileMode {
	if perm := m.Perm(); perm != 0 {
		return perm
	}
	return 0755
}
