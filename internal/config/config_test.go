package config

import (
	"path/filepath"
	"testing"
)

func TestFileStore_DefaultWhenUnset(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}

	if got := s.GetBool("extensions", "missing", true); !got {
		t.Errorf("GetBool default = false, want true")
	}
	if got := s.GetBool("extensions", "missing", false); got {
		t.Errorf("GetBool default = true, want false")
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	s.SetBool("extensions", "midnight", false)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}

	// Re-open and verify the value survived.
	s2, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore reopen error: %v", err)
	}
	if got := s2.GetBool("extensions", "midnight", true); got {
		t.Errorf("GetBool after reload = true, want false")
	}
}

func TestFileStore_FlushCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	s.SetBool("extensions", "x", true)
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
}
