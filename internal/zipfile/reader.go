package zipfile

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/klauspost/compress/flate"
)

const copyBufferSize = 32 * 1024

// Entry describes a single archive entry.
type Entry struct {
	// Name is the slash-separated path of the entry inside the archive.
	Name string
	Mode fs.FileMode
	// IsDir reports whether the entry is a directory marker.
	IsDir bool
	// Size is the uncompressed size in bytes.
	Size uint64
}

// Reader streams entries out of a zip container. Entries are yielded in
// archive order by Next; the sequence cannot be restarted. Close must be
// called on all exit paths.
type Reader struct {
	rc   *zip.ReadCloser
	next int
	cur  *zip.File
	buf  []byte
}

// Open opens the named zip container for sequential reading.
func Open(name string) (*Reader, error) {
	rc, err := zip.OpenReader(name)
	if err != nil {
		return nil, &OpenError{Path: name, Err: err}
	}

	// Swap in the faster flate implementation for Deflate entries.
	rc.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	return &Reader{rc: rc, buf: make([]byte, copyBufferSize)}, nil
}

// Next advances to the next entry and returns its metadata. It returns
// io.EOF at end of archive.
func (r *Reader) Next() (Entry, error) {
	if r.next >= len(r.rc.File) {
		r.cur = nil
		return Entry{}, io.EOF
	}

	f := r.rc.File[r.next]
	r.next++
	r.cur = f

	return Entry{
		Name:  f.Name,
		Mode:  f.Mode(),
		IsDir: f.FileInfo().IsDir(),
		Size:  f.UncompressedSize64,
	}, nil
}

// Copy streams the current entry's data to w in chunks until exhausted.
// It must be called after a successful Next.
func (r *Reader) Copy(w io.Writer) error {
	if r.cur == nil {
		return &ReadError{Err: errors.New("no current entry")}
	}

	src, err := r.cur.Open()
	if err != nil {
		return &ReadError{Entry: r.cur.Name, Err: err}
	}
	defer src.Close()

	if _, err := io.CopyBuffer(w, src, r.buf); err != nil {
		// Write-side failures keep their own error type.
		var we *WriteError
		if errors.As(err, &we) {
			return err
		}
		return &ReadError{Entry: r.cur.Name, Err: err}
	}
	return nil
}

// Close releases the underlying container file.
func (r *Reader) Close() error {
	return r.rc.Close()
}

// SafeRelPath reports whether name is a relative slash-separated path
// that stays inside its root once joined. Absolute paths, backslashes,
// and ".." components are rejected.
func SafeRelPath(name string) bool {
	if name == "" {
		return false
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
