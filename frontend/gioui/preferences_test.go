package gioui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/unit"
)

func TestDefaultPreferences(t *testing.T) {
	p, err := MakePreferences(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error without a preferences file: %v", err)
	}
	if w, h := p.WindowSize(); w != unit.Dp(960) || h != unit.Dp(720) {
		t.Errorf("unexpected default window size %vx%v", w, h)
	}
	if !strings.Contains(p.Title, "ScoreCraft") {
		t.Errorf("unexpected default title template %q", p.Title)
	}
}

func TestCustomPreferences(t *testing.T) {
	dir := t.TempDir()
	yml := "window:\n  width: 640\n  maximized: true\n"
	if err := os.WriteFile(filepath.Join(dir, "preferences.yml"), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := MakePreferences(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Window.Width != 640 || !p.Window.Maximized {
		t.Errorf("custom preferences not applied: %+v", p.Window)
	}
	if p.Window.Height != 720 || p.Title == "" {
		t.Errorf("unset fields should keep their defaults: %+v", p)
	}
}

func TestBrokenPreferences(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "preferences.yml"), []byte("colour: blue\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := MakePreferences(dir)
	if err == nil {
		t.Fatalf("expected an error for an unknown key")
	}
	if p.Window.Width != 960 {
		t.Errorf("broken preferences should fall back to defaults, got %+v", p.Window)
	}
}
