// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, and Go's //go:embed bakes
// it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName               string `yaml:"cli_name"`
	DisplayName           string `yaml:"display_name"`
	Description           string `yaml:"description"`
	HomeDir               string `yaml:"home_dir"`
	EnvPrefix             string `yaml:"env_prefix"`
	GoModule              string `yaml:"go_module"`
	GitHubRepo            string `yaml:"github_repo"`
	DefaultThemeExtension string `yaml:"default_theme_extension"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:               "pixelforge",
			DisplayName:           "PixelForge",
			Description:           "Extension manager for the PixelForge pixel-art editor",
			HomeDir:               ".pixelforge",
			EnvPrefix:             "PIXELFORGE",
			GoModule:              "github.com/pixelforge-labs/pixelforge",
			GitHubRepo:            "pixelforge-labs/pixelforge",
			DefaultThemeExtension: "pixelforge-theme",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "pixelforge").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "PixelForge").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".pixelforge").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PIXELFORGE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by scripts — not consumed at
// runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// DefaultThemeExtension returns the name of the extension that ships the
// stock theme. That extension can never be disabled or uninstalled.
func DefaultThemeExtension() string { load(); return defaults.DefaultThemeExtension }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("DATA") →
// "PIXELFORGE_DATA".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
