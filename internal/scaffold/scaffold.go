package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/pixelforge-labs/pixelforge/internal/branding"
	"github.com/pixelforge-labs/pixelforge/internal/manifest"
	"github.com/pixelforge-labs/pixelforge/internal/userdata"
)

//go:embed templates
var templateFS embed.FS

const templateRoot = "templates/extension"

// contributionDirs are created empty so contributions have an obvious home.
var contributionDirs = []string{"themes", "palettes"}

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Data carries the values substituted into the skeleton templates.
type Data struct {
	Name        string
	DisplayName string
	Version     string
	CLIName     string
}

// NewData builds template data for an extension called name, filling in
// defaults for anything left blank.
func NewData(name, displayName string) *Data {
	if displayName == "" {
		displayName = displayNameFor(name)
	}
	return &Data{
		Name:        name,
		DisplayName: displayName,
		Version:     "0.1.0",
		CLIName:     branding.CLIName(),
	}
}

func displayNameFor(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return name
	}
	return strings.Join(words, " ")
}

// Result describes what Generate wrote to disk.
type Result struct {
	Dir   string
	Files []string
}

// Generate writes a skeleton extension package into outputDir, creating
// the directory if needed. It refuses to write into a directory that
// already has files, and validates the generated manifest before
// returning.
func Generate(data *Data, outputDir string) (*Result, error) {
	if !namePattern.MatchString(data.Name) {
		return nil, fmt.Errorf("invalid extension name %q: use lowercase letters, digits, '-', '_' or '.'", data.Name)
	}
	if err := ensureEmptyDir(outputDir); err != nil {
		return nil, err
	}

	result := &Result{Dir: outputDir}
	err := fs.WalkDir(templateFS, templateRoot, func(src string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel := strings.TrimPrefix(src, templateRoot+"/")
		dst := filepath.Join(outputDir, strings.TrimSuffix(filepath.FromSlash(rel), ".tmpl"))
		if err := renderTemplate(src, dst, data); err != nil {
			return err
		}
		result.Files = append(result.Files, dst)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, dir := range contributionDirs {
		if err := os.MkdirAll(filepath.Join(outputDir, dir), userdata.DirPermNormal); err != nil {
			return nil, fmt.Errorf("creating %s directory: %w", dir, err)
		}
	}

	manifestPath := filepath.Join(outputDir, manifest.FileName)
	if _, err := manifest.Parse(manifestPath); err != nil {
		return nil, fmt.Errorf("generated manifest is invalid: %w", err)
	}
	return result, nil
}

func ensureEmptyDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return os.MkdirAll(dir, userdata.DirPermNormal)
	}
	if err != nil {
		return fmt.Errorf("inspecting output directory: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("output directory %s is not empty", dir)
	}
	return nil
}

func renderTemplate(src, dst string, data *Data) error {
	raw, err := templateFS.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", src, err)
	}
	tmpl, err := template.New(filepath.Base(src)).Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", src, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering template %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), userdata.DirPermNormal); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dst, err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), userdata.FilePermNormal); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
