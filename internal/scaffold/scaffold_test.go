package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixelforge-labs/pixelforge/internal/manifest"
)

func TestGenerateWritesParsableManifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pixel-icons")
	result, err := Generate(NewData("pixel-icons", ""), dir)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.Dir != dir {
		t.Errorf("result.Dir = %q, want %q", result.Dir, dir)
	}

	m, err := manifest.Parse(filepath.Join(dir, manifest.FileName))
	if err != nil {
		t.Fatalf("parsing generated manifest: %v", err)
	}
	if m.Name != "pixel-icons" {
		t.Errorf("manifest name = %q, want %q", m.Name, "pixel-icons")
	}
	if m.DisplayName != "Pixel Icons" {
		t.Errorf("manifest displayName = %q, want %q", m.DisplayName, "Pixel Icons")
	}
	if m.Version != "0.1.0" {
		t.Errorf("manifest version = %q, want %q", m.Version, "0.1.0")
	}
}

func TestGenerateCreatesContributionDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ext")
	if _, err := Generate(NewData("ext", "My Extension"), dir); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, sub := range []string{"themes", "palettes"} {
		info, err := os.Stat(filepath.Join(dir, sub))
		if err != nil {
			t.Fatalf("stat %s: %v", sub, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", sub)
		}
	}
}

func TestGenerateRefusesNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(NewData("ext", ""), dir); err == nil {
		t.Fatal("Generate() into non-empty dir succeeded, want error")
	}
}

func TestGenerateRejectsBadName(t *testing.T) {
	for _, name := range []string{"", "Has Spaces", "UPPER", "../escape"} {
		if _, err := Generate(NewData(name, "x"), filepath.Join(t.TempDir(), "out")); err == nil {
			t.Errorf("Generate(%q) succeeded, want error", name)
		}
	}
}

func TestDisplayNameFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"pixel-icons", "Pixel Icons"},
		{"my_theme", "My Theme"},
		{"single", "Single"},
		{"dots.in.name", "Dots In Name"},
	}
	for _, tt := range tests {
		if got := displayNameFor(tt.name); got != tt.want {
			t.Errorf("displayNameFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
