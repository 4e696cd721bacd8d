package gioui

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gioui.org/unit"
	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Window WindowPreferences
		// Title is a text/template, with sprig functions, rendering the window
		// title from the score setup.
		Title string
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}
)

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// MakePreferences returns the default preferences overlaid with
// preferences.yml from configDir, if there is one. The returned error is a
// warning: the preferences are usable even when it is not nil.
func MakePreferences(configDir string) (Preferences, error) {
	preferences := loadDefaultPreferences()
	if configDir == "" {
		return preferences, nil
	}
	path := filepath.Join(configDir, "preferences.yml")
	bytes, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return preferences, nil
	}
	if err != nil {
		return preferences, fmt.Errorf("could not read %s: %w", path, err)
	}
	custom := preferences
	if err := yaml.UnmarshalStrict(bytes, &custom); err != nil {
		return preferences, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return custom, nil
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}
