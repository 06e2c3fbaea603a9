package zipfile

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// writeTestZip builds a zip file with the given name→content entries.
// Entries whose name ends in "/" become directory markers.
func writeTestZip(t *testing.T, entries map[string]string, order []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range order {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(entries[name])); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen_NotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.zip")
	if err := os.WriteFile(path, []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var oe *OpenError
	if !errors.As(err, &oe) {
		t.Errorf("error type = %T, want *OpenError", err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.zip"))
	var oe *OpenError
	if !errors.As(err, &oe) {
		t.Errorf("error type = %T, want *OpenError", err)
	}
}

func TestReader_SequentialEntries(t *testing.T) {
	path := writeTestZip(t,
		map[string]string{
			"pack/package.json": `{"name":"pack"}`,
			"pack/theme.xml":    "<theme/>",
			"pack/sub/":         "",
		},
		[]string{"pack/package.json", "pack/theme.xml", "pack/sub/"})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer r.Close()

	var names []string
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next error: %v", err)
		}
		names = append(names, e.Name)
	}

	want := []string{"pack/package.json", "pack/theme.xml", "pack/sub/"}
	if len(names) != len(want) {
		t.Fatalf("entries = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("entry[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	// Exhausted readers stay exhausted.
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next after EOF = %v, want io.EOF", err)
	}
}

func TestReader_Copy(t *testing.T) {
	path := writeTestZip(t,
		map[string]string{"a.txt": "hello archive"},
		[]string{"a.txt"})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer r.Close()

	if _, err := r.Next(); err != nil {
		t.Fatalf("Next error: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Copy(&buf); err != nil {
		t.Fatalf("Copy error: %v", err)
	}
	if buf.String() != "hello archive" {
		t.Errorf("Copy data = %q, want %q", buf.String(), "hello archive")
	}
}

func TestReader_CopyWithoutNext(t *testing.T) {
	path := writeTestZip(t, map[string]string{"a": "x"}, []string{"a"})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer r.Close()

	var re *ReadError
	if err := r.Copy(io.Discard); !errors.As(err, &re) {
		t.Errorf("Copy before Next = %v, want *ReadError", err)
	}
}

func TestDiskWriter_WriteEntry(t *testing.T) {
	path := writeTestZip(t,
		map[string]string{
			"dir/":      "",
			"dir/f.txt": "content",
		},
		[]string{"dir/", "dir/f.txt"})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer r.Close()

	dst := t.TempDir()
	w := NewDiskWriter()
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next error: %v", err)
		}
		if err := w.WriteEntry(filepath.Join(dst, filepath.FromSlash(e.Name)), e, r); err != nil {
			t.Fatalf("WriteEntry error: %v", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dst, "dir", "f.txt"))
	if err != nil {
		t.Fatalf("reading extracted file: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("extracted data = %q, want %q", data, "content")
	}
}

func TestDiskWriter_CreatesParents(t *testing.T) {
	path := writeTestZip(t,
		map[string]string{"deep/nested/file.txt": "x"},
		[]string{"deep/nested/file.txt"})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer r.Close()

	dst := t.TempDir()
	e, err := r.Next()
	if err != nil {
		t.Fatalf("Next error: %v", err)
	}
	if err := NewDiskWriter().WriteEntry(filepath.Join(dst, filepath.FromSlash(e.Name)), e, r); err != nil {
		t.Fatalf("WriteEntry error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "deep", "nested", "file.txt")); err != nil {
		t.Errorf("extracted file missing: %v", err)
	}
}

func TestSafeRelPath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"theme.xml", true},
		{"sub/dir/file", true},
		{"", false},
		{"/etc/passwd", false},
		{"../outside", false},
		{"a/../../outside", false},
		{`windows\style`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeRelPath(tt.name); got != tt.want {
				t.Errorf("SafeRelPath(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
