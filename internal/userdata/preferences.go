package userdata

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Preferences represents user-wide settings stored in preferences.yaml.
type Preferences struct {
	Theme ThemePreferences `yaml:"theme,omitempty"`

	// Extras holds arbitrary user-defined fields.
	Extras map[string]interface{} `yaml:",inline"`
}

// ThemePreferences holds the theme selection.
type ThemePreferences struct {
	Selected string `yaml:"selected,omitempty"`
}

// SelectedTheme returns the id of the currently selected theme, or the
// empty string if none is recorded.
func (p *Preferences) SelectedTheme() string {
	if p == nil {
		return ""
	}
	return p.Theme.Selected
}

// LoadPreferences reads and parses preferences.yaml. A missing file is not
// an error; it yields empty preferences.
func LoadPreferences() (*Preferences, error) {
	path, err := PreferencesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Preferences{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}
	return &p, nil
}
