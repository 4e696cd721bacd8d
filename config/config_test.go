package config_test

import (
	"path/filepath"
	"testing"

	"github.com/scorecraft/scorecraft/config"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("SCORECRAFT_LOG_LEVEL", "")
	t.Setenv("SCORECRAFT_CATALOG", "")
	t.Setenv("SCORECRAFT_LOG_FILE", "")
	c, err := config.Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.LogFile != "" {
		t.Errorf("expected an explicitly empty log file to stay empty, got %q", c.LogFile)
	}
	if c.CatalogPath != "" {
		t.Errorf("expected no catalog path, got %q", c.CatalogPath)
	}
}

func TestParseOverrides(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "x.log")
	t.Setenv("SCORECRAFT_LOG_LEVEL", "debug")
	t.Setenv("SCORECRAFT_LOG_FILE", logFile)
	t.Setenv("SCORECRAFT_CATALOG", "/tmp/catalog.yml")
	c, err := config.Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	expected := config.Config{LogLevel: "debug", LogFile: logFile, CatalogPath: "/tmp/catalog.yml"}
	if c != expected {
		t.Errorf("expected %+v, got %+v", expected, c)
	}
}
